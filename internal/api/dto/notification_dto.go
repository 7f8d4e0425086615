package dto

import (
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

// NotificationResponse is one delivery record.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotificationResponse maps a domain notification.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Message:   notification.Message,
		Link:      notification.Link,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

// NewNotificationResponses maps a listing.
func NewNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, NewNotificationResponse(&notifications[i]))
	}
	return items
}
