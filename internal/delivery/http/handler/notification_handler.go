package handler

import (
	"net/http"

	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// ListMine returns the authenticated user's notification feed
func (h *NotificationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	notifications, err := h.notificationUsecase.ListMine(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), id, userID); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead marks the whole feed as read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.notificationUsecase.MarkAllRead(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to mark notifications read")
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked as read", nil)
}
