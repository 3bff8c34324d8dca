// Package chat exposes the assistant engine over HTTP.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/message"
	"github.com/mohduwaish/portfolio-assistant/backend/pkg/utils"
)

// Handler routes chat requests to the message pipeline.
type Handler struct {
	messages *message.Handler
}

// New creates the chat handler.
func New(messages *message.Handler) *Handler {
	return &Handler{messages: messages}
}

// RegisterRoutes registers the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/status", h.handleStatus)
	r.Post("/chat/reset", h.handleReset)
	r.Get("/chat/health", h.handleHealth)
	r.Get("/chat/ratelimit", h.handleRateLimit)
}

// handleChat processes one user message and returns the reply plus the
// updated conversation.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message  string `json:"message"`
		ClientID string `json:"clientId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	clientID := strings.TrimSpace(payload.ClientID)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	reply, conversation, err := h.messages.ProcessMessage(r.Context(), clientID, payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrRateLimited):
			utils.RespondError(w, http.StatusTooManyRequests, "too many requests, please slow down")
		case errors.Is(err, message.ErrInvalidContent):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"clientId": clientID,
		"message":  reply,
		"context":  conversation,
	})
}

// handleStatus reports engine availability and rate limit settings.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status": map[string]interface{}{
			"ai": h.messages.AIStatus(),
			"rateLimits": map[string]interface{}{
				"maxRequestsPerMinute": h.messages.MaxRequests(),
				"windowMs":             h.messages.Window(),
			},
		},
	})
}

// handleReset discards the client's conversation and starts a new session.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ClientID string `json:"clientId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	clientID := strings.TrimSpace(payload.ClientID)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	session := h.messages.ResetContext(r.Context(), clientID)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"clientId": clientID,
		"context":  session,
	})
}

// handleHealth reports conversation health for one client.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(r.URL.Query().Get("clientId"))
	if clientID == "" {
		utils.RespondError(w, http.StatusBadRequest, "clientId query parameter is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"health":  h.messages.Health(r.Context(), clientID),
	})
}

// handleRateLimit reports the client's remaining request budget.
func (h *Handler) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(r.URL.Query().Get("clientId"))
	if clientID == "" {
		utils.RespondError(w, http.StatusBadRequest, "clientId query parameter is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"rateLimit": h.messages.RateLimit(clientID),
	})
}
