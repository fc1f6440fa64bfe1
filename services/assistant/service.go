package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"

	bookingRepo "neobook/database/repository/booking"
	historyRepo "neobook/database/repository/history"
	"neobook/models"
	"neobook/services/dialogue"
	"neobook/services/notification"
	"neobook/services/rag"
	"neobook/utils"

	"go.uber.org/zap"
)

// DefaultAssistantService routes each turn to either the slot-filling booking
// flow or the retrieval-augmented Q&A flow, and orchestrates commit.
type DefaultAssistantService struct {
	Extractor    *dialogue.Extractor
	Slots        dialogue.SlotStore
	History      historyRepo.HistoryRepository
	Bookings     bookingRepo.BookingRepository
	Answers      *rag.AnswerEngine
	Notification notification.NotificationService

	// sessionLocks serializes turns per session to preserve the
	// last-write-wins merge invariant. Sessions are independent.
	sessionLocks sync.Map
}

func (s *DefaultAssistantService) lockSession(sessionID string) *sync.Mutex {
	mu, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, sessionID, input string) (string, error) {
	mu := s.lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	history, err := s.History.Recent(ctx, sessionID, 0)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	if err := s.History.Append(ctx, sessionID, models.RoleUser, input, nil); err != nil {
		return "", fmt.Errorf("record user turn: %w", err)
	}

	reply, replyMeta, err := s.respond(ctx, sessionID, history, input)
	if err != nil {
		return "", err
	}

	if err := s.History.Append(ctx, sessionID, models.RoleAssistant, reply, replyMeta); err != nil {
		return "", fmt.Errorf("record assistant turn: %w", err)
	}
	return reply, nil
}

// respond decides the mode for this turn. Booking mode is entered on an
// explicit "book" keyword or whenever a booking is already in progress;
// everything else goes to retrieval Q&A. At most one gateway call happens
// for extraction and at most one for answering, never both.
func (s *DefaultAssistantService) respond(ctx context.Context, sessionID string, history []models.ConversationTurn, input string) (string, map[string]string, error) {
	slots, err := s.Slots.Get(ctx, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("load slots: %w", err)
	}

	bookingMode := strings.Contains(strings.ToLower(input), "book") || !slots.Empty()
	if !bookingMode {
		answer, err := s.Answers.Answer(ctx, input, formatContext(history))
		if err != nil {
			return "", nil, fmt.Errorf("answer question: %w", err)
		}
		return answer, nil, nil
	}

	partial := s.Extractor.Extract(ctx, history, input)
	slots.Merge(partial)
	if err := s.Slots.Set(ctx, sessionID, slots); err != nil {
		return "", nil, fmt.Errorf("store slots: %w", err)
	}

	action := dialogue.NextAction(slots)
	if action.Type != dialogue.ActionCommit {
		return action.Prompt, nil, nil
	}
	return s.commit(ctx, sessionID, slots)
}

// commit runs the ready-to-commit flow: availability check, persistence,
// notification. The slot set survives every failure path so the user never
// re-enters data for a retry.
func (s *DefaultAssistantService) commit(ctx context.Context, sessionID string, slots *models.SlotSet) (string, map[string]string, error) {
	name, _ := slots.Get("name")
	email, _ := slots.Get("email")
	phone, _ := slots.Get("phone")
	bookingType, _ := slots.Get("booking_type")
	date, _ := slots.Get("date")
	timeOfDay, _ := slots.Get("time")

	available, err := s.Bookings.CheckAvailability(ctx, date, timeOfDay)
	if err != nil {
		return "", nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return fmt.Sprintf("Sorry, the slot on %s at %s is already booked. Please choose another time.", date, timeOfDay), nil, nil
	}

	result := s.Bookings.SaveBooking(ctx, name, email, phone, bookingType, date, timeOfDay)
	if !result.Success {
		return fmt.Sprintf("Failed to save booking: %s", result.Message), nil, nil
	}

	body := fmt.Sprintf(`Booking is confirmed!

Booking ID: %s

- Name: %s
- Email: %s
- Phone: %s
- Service: %s
- Date: %s
- Time: %s`, result.ID, name, email, phone, bookingType, date, timeOfDay)
	status := s.Notification.Send(ctx, email, "Booking Confirmation", body)
	utils.GetLogger().Info("booking committed",
		zap.String("session_id", sessionID),
		zap.String("booking_id", result.ID),
		zap.String("email_status", status))

	if err := s.Slots.Clear(ctx, sessionID); err != nil {
		return "", nil, fmt.Errorf("clear slots after commit: %w", err)
	}

	reply := fmt.Sprintf("Booking Confirmed!\n\nBooking ID: %s\n\nA confirmation email has been sent to %s.", result.ID, email)
	meta := map[string]string{models.MetaBookingConfirmed: "true"}
	return reply, meta, nil
}

func (s *DefaultAssistantService) ResetSession(ctx context.Context, sessionID string) (int64, error) {
	mu := s.lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.Slots.Clear(ctx, sessionID); err != nil {
		return 0, fmt.Errorf("clear slots: %w", err)
	}
	return s.History.Clear(ctx, sessionID)
}

// formatContext renders history as ROLE: content lines for the answer prompt.
func formatContext(history []models.ConversationTurn) string {
	if len(history) == 0 {
		return ""
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(turn.Role), turn.Content))
	}
	return strings.Join(lines, "\n")
}
