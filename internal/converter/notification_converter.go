package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to DTO
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:            notification.ID,
		Type:          notification.Type,
		Title:         notification.Title,
		Message:       notification.Message,
		AppointmentID: notification.AppointmentID,
		IsRead:        notification.IsRead,
		CreatedAt:     notification.CreatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *NotificationToResponse(&notifications[i]))
	}
	return responses
}
