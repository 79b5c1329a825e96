package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// NotificationResponse is the wire view of a notification.
type NotificationResponse struct {
	ID         string                  `json:"id"`
	Type       domain.NotificationType `json:"type"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	EntityType string                  `json:"entityType,omitempty"`
	EntityID   string                  `json:"entityId,omitempty"`
	Read       bool                    `json:"read"`
	CreatedAt  time.Time               `json:"createdAt"`
}

// NewNotificationResponse maps the domain model.
func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

// NewNotificationResponses maps a slice.
func NewNotificationResponses(list []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewNotificationResponse(&list[i]))
	}
	return out
}
