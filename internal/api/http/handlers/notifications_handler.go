package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	"github.com/openboard/issue-service/internal/auth"
	"github.com/openboard/issue-service/internal/service"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// NotificationsHandler serves recipient-facing notification endpoints.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notifications, err := h.notifications.ListForUser(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponses(notifications)})
}

// MarkRead PATCH /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notification, err := h.notifications.MarkRead(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponse(notification)})
}
