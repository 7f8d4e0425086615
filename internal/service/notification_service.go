package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/events"
	"github.com/openboard/issue-service/internal/repository"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// NotificationService fans out in-app notifications for domain events and
// serves the recipient-facing operations. Persistence failures during
// fan-out are logged and swallowed: a failed notification must never fail
// the business operation that triggered it.
type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NotificationDependencies bundles collaborators.
type NotificationDependencies struct {
	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		notifications: deps.NotificationRepo,
		users:         deps.UserRepo,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
	}
}

// RegisterHandlers subscribes to the ticket lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.HandleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.HandleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.HandleTicketAssigned)
	n.dispatcher.Subscribe(events.EventTicketDeleted, n.HandleTicketDeleted)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.HandleCommentAdded)
}

// HandleTicketCreated notifies every current admin about the new report.
func (n *NotificationService) HandleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	link := ticketLink(event.TicketID)
	n.NotifyAdmins(ctx, fmt.Sprintf("New ticket filed: %s", payload.Title), &link)
	return nil
}

// HandleTicketStatusChanged notifies the owner about the new status.
func (n *NotificationService) HandleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	link := ticketLink(event.TicketID)
	n.Notify(ctx, payload.OwnerID, fmt.Sprintf("Your ticket status was updated to %s.", payload.NewStatus), &link)
	return nil
}

// HandleTicketAssigned notifies the owner naming the assignee.
func (n *NotificationService) HandleTicketAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok {
		return nil
	}
	message := "Your ticket is currently unassigned."
	if payload.AssigneeID != nil {
		message = fmt.Sprintf("Your ticket was assigned to %s.", payload.AssigneeUsername)
	}
	link := ticketLink(event.TicketID)
	n.Notify(ctx, payload.OwnerID, message, &link)
	return nil
}

// HandleTicketDeleted notifies the owner that the report was removed.
func (n *NotificationService) HandleTicketDeleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketDeletedPayload)
	if !ok {
		return nil
	}
	n.Notify(ctx, payload.OwnerID, fmt.Sprintf("Your ticket %q was removed by the admin team.", payload.Title), nil)
	return nil
}

// HandleCommentAdded notifies the owner unless they wrote the comment.
func (n *NotificationService) HandleCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CommentAddedPayload)
	if !ok {
		return nil
	}
	if payload.AuthorID == payload.OwnerID {
		return nil
	}
	link := ticketLink(event.TicketID)
	n.Notify(ctx, payload.OwnerID, "New comment on your ticket.", &link)
	return nil
}

// Notify creates one notification record, best effort.
func (n *NotificationService) Notify(ctx context.Context, userID, message string, link *string) {
	notification := &domain.Notification{
		UserID:  userID,
		Message: message,
		Link:    link,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("notification delivery failed",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// NotifyAdmins fans out one notification per current admin. Zero admins is
// a no-op, not an error.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string, link *string) {
	admins, err := n.users.ListAdmins(ctx)
	if err != nil {
		n.logger.Warn("admin fan-out failed", zap.Error(err))
		return
	}
	for _, admin := range admins {
		n.Notify(ctx, admin.ID, message, link)
	}
}

// ListForUser returns the actor's notifications, newest first.
func (n *NotificationService) ListForUser(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	list, err := n.notifications.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// MarkRead flips the read flag. Only the recipient may mark a notification.
func (n *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error) {
	notification, err := n.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("notification", map[string]any{"notification_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if notification.UserID != actor.ID {
		return nil, apperrors.NewForbidden("notification belongs to another user")
	}
	if err := n.notifications.MarkRead(ctx, id); err != nil {
		return nil, apperrors.MapError(err)
	}
	notification.Read = true
	return notification, nil
}

func ticketLink(ticketID string) string {
	return "/tickets/" + ticketID
}
