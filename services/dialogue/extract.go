package dialogue

import (
	"context"
	"fmt"
	"strings"

	"neobook/models"
	ai "neobook/services/intelligence"
	"neobook/utils"

	"go.uber.org/zap"
)

const extractionPrompt = `You are an AI Booking Assistant. Analyze the conversation and extract booking details for the CURRENT booking request.

RULES:
1. If the conversation history contains a previous successful booking (indicated by "Booking Confirmed"), IGNORE the details and confirmation from that previous booking.
2. Treat the "Current Input" as the start of a new booking or a continuation of the current incomplete booking.
3. Do NOT set "confirmation" to true unless the user has explicitly confirmed the CURRENT booking summary in the most recent turns.
4. If the user says "same as before", you MAY use previous details, otherwise start fresh.

Return a JSON object with the following fields: name, email, phone, booking_type, date, time, confirmation.
If a field is missing, set it to null. Return ONLY the JSON object, no other text.

Conversation History:
%s

Current Input: %s`

// Extractor turns free-form user input into a partial SlotSet via the gateway.
type Extractor struct {
	Gateway ai.Gateway
}

// Extract asks the model for the slots of the current booking attempt. Any
// failure (transport, timeout, malformed output) yields an empty partial:
// extraction failure means "no new information", never a user-visible error.
//
// History is pre-filtered at the last committed-booking boundary so a stale
// confirmation can never leak into a new attempt, regardless of how the model
// reads the transcript.
func (e *Extractor) Extract(ctx context.Context, history []models.ConversationTurn, input string) models.SlotSet {
	prompt := fmt.Sprintf(extractionPrompt, formatHistory(TrimAtCommitBoundary(history)), input)

	var slots models.SlotSet
	if err := e.Gateway.CompleteStructured(ctx, prompt, &slots); err != nil {
		utils.GetLogger().Warn("slot extraction failed, treating as no new information", zap.Error(err))
		return models.SlotSet{}
	}
	return sanitize(slots)
}

// sanitize drops empty-string values so they cannot clobber stored slots;
// the merge contract is "missing means absent, never empty string".
func sanitize(slots models.SlotSet) models.SlotSet {
	var clean models.SlotSet
	clean.Confirmed = slots.Confirmed
	for _, field := range models.RequiredSlots {
		if v, ok := slots.Get(field); ok {
			partial := models.SlotSet{}
			setField(&partial, field, v)
			clean.Merge(partial)
		}
	}
	return clean
}

func setField(s *models.SlotSet, field, value string) {
	v := value
	switch field {
	case "name":
		s.Name = &v
	case "email":
		s.Email = &v
	case "phone":
		s.Phone = &v
	case "booking_type":
		s.BookingType = &v
	case "date":
		s.Date = &v
	case "time":
		s.Time = &v
	}
}

// TrimAtCommitBoundary returns only the turns after the most recent committed
// booking. The extraction prompt also tells the model to ignore completed
// bookings, but the rule-based cut makes the framing deterministic.
func TrimAtCommitBoundary(history []models.ConversationTurn) []models.ConversationTurn {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Metadata[models.MetaBookingConfirmed] == "true" {
			return history[i+1:]
		}
	}
	return history
}

func formatHistory(history []models.ConversationTurn) string {
	if len(history) == 0 {
		return "(no previous messages)"
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(turn.Role), turn.Content))
	}
	return strings.Join(lines, "\n")
}
