package handlers

import (
	"context"
	"net/http"
	"time"

	historyRepo "neobook/database/repository/history"
	"neobook/models"
	"neobook/services/assistant"
	"neobook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler serves the conversational endpoints. Assistant may be nil when
// the gateway could not be initialized; chat then degrades to 503 instead of
// failing every turn opaquely.
type ChatHandler struct {
	Assistant assistant.AssistantService
	History   historyRepo.HistoryRepository
	AITimeout time.Duration
}

func NewChatHandler(svc assistant.AssistantService, history historyRepo.HistoryRepository, aiTimeout time.Duration) *ChatHandler {
	return &ChatHandler{Assistant: svc, History: history, AITimeout: aiTimeout}
}

// HandleChat processes one user turn.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Assistant == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Assistant unavailable",
			"The language model gateway is not configured. Set GEMINI_API_KEY.")
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.AITimeout)
	defer cancel()

	reply, err := h.Assistant.ProcessMessage(ctx, req.SessionID, req.Message)
	if err != nil {
		logger.Error("chat turn failed", zap.String("session_id", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{SessionID: req.SessionID, Reply: reply})
}

// GetHistory returns the session's retained turns in chronological order.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionID")
	turns, err := h.History.Recent(c.Request.Context(), sessionID, 0)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "turns": turns})
}

// ResetSession clears slot state and history for a session.
func (h *ChatHandler) ResetSession(c *gin.Context) {
	if h.Assistant == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Assistant unavailable",
			"The language model gateway is not configured. Set GEMINI_API_KEY.")
		return
	}

	sessionID := c.Param("sessionID")
	removed, err := h.Assistant.ResetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "removed": removed})
}
