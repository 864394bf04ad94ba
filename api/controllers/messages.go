package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carnamarket/backend/api/middleware"
	"github.com/carnamarket/backend/api/responses"
	"github.com/carnamarket/backend/api/validators"
	messagesvc "github.com/carnamarket/backend/internal/messages"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/logger"
)

type sendMessageRequest struct {
	ReceiverID uuid.UUID  `json:"receiverId" validate:"required"`
	Content    string     `json:"content" validate:"required,min=1,max=2000"`
	ProductID  *uuid.UUID `json:"productId,omitempty"`
}

// SendMessage delivers a direct message from the authenticated user.
func SendMessage(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		var payload sendMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.Send(r.Context(), middleware.UserIDFromContext(r.Context()), messagesvc.SendMessageInput{
			ReceiverID: payload.ReceiverID,
			Content:    payload.Content,
			ProductID:  payload.ProductID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": message,
		})
	}
}

// UnreadCount reports how many unread messages await the caller.
func UnreadCount(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		count, err := svc.UnreadCount(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   count,
		})
	}
}

// GetConversation lists the exchange with another user and marks it read.
func GetConversation(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		otherID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		messages, err := svc.Conversation(r.Context(), middleware.UserIDFromContext(r.Context()), otherID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"messages": messages,
		})
	}
}
