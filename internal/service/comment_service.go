package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/events"
	"github.com/openboard/issue-service/internal/repository"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// CommentService manages the append-only thread attached to a ticket.
type CommentService struct {
	comments   repository.CommentRepository
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	CommentRepo repository.CommentRepository
	TicketRepo  repository.TicketRepository
	Dispatcher  events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		comments:   deps.CommentRepo,
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Add appends a comment to the ticket's thread. Any actor who can see the
// ticket may comment.
func (s *CommentService) Add(ctx context.Context, actor *domain.User, ticketID, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("comment text required", nil)
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TicketID: ticket.ID,
		AuthorID: actor.ID,
		Body:     body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCommentAdded,
			TicketID:  ticket.ID,
			ActorID:   actor.ID,
			Timestamp: time.Now(),
			Payload: events.CommentAddedPayload{
				OwnerID:     ticket.CreatedBy,
				CommentID:   comment.ID,
				AuthorID:    actor.ID,
				BodyPreview: bodyPreview(comment.Body, 120),
			},
		})
	}
	return comment, nil
}

// List returns the thread in ascending creation order with author identity.
func (s *CommentService) List(ctx context.Context, ticketID string) ([]domain.CommentWithAuthor, error) {
	if _, err := s.getTicket(ctx, ticketID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

func (s *CommentService) getTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func bodyPreview(body string, max int) string {
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
