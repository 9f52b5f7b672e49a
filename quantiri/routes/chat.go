// quantiri/routes/chat.go
package routes

import (
	"encoding/json"
	"net/http"
	"quantiri/quantiri/config"
	"quantiri/quantiri/controllers"
	"quantiri/quantiri/middlewares"
	"quantiri/quantiri/types"
	"quantiri/quantiri/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	// POST / : one chat turn. The orchestrator never persists; when the
	// client sent a sessionId this handler stores the exchange itself.
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.NewValidationError(types.FieldError{Field: "body", Message: "Invalid JSON"}))
			return
		}
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)

		reply, err := ctrl.Respond(r.Context(), userID, req)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := types.ChatResponse{Reply: reply}
		if req.SessionID != "" {
			lastUser := ""
			for i := len(req.Messages) - 1; i >= 0; i-- {
				if req.Messages[i].Role == types.RoleUser {
					lastUser = req.Messages[i].Content
					break
				}
			}
			if err := ctrl.SaveExchange(r.Context(), userID, req.SessionID, lastUser, reply); err != nil {
				logging.ErrorLogger.Error("failed to persist chat exchange",
					zap.String("session_id", req.SessionID), zap.Error(err))
			}
			resp.SessionID = req.SessionID
		}
		writeJSON(w, http.StatusOK, resp)
	})

	r.Get("/sessions/{session_id}/messages", func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		sessionID := chi.URLParam(r, "session_id")
		msgs, err := ctrl.GetSessionMessages(r.Context(), userID, sessionID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	})

	r.Post("/sessions/{session_id}/reset", func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		sessionID := chi.URLParam(r, "session_id")
		greeting, err := ctrl.ResetSession(r.Context(), userID, sessionID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, greeting)
	})

	return r
}

func InsightsRoutes(ctrl *controllers.InsightsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.InsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.NewValidationError(types.FieldError{Field: "body", Message: "Invalid JSON"}))
			return
		}
		resp, err := ctrl.Insights(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	return r
}
