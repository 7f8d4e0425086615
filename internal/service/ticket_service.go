package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openboard/issue-service/internal/ai"
	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/events"
	"github.com/openboard/issue-service/internal/repository"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// Enricher produces severity and summary for a candidate ticket.
type Enricher interface {
	Enrich(ctx context.Context, title, description string) ai.Enrichment
}

// ListScope selects the candidate set for a listing request.
type ListScope string

const (
	ScopeAll  ListScope = "all"
	ScopeMine ListScope = "mine"
)

// TicketService coordinates the ticket lifecycle: creation with enrichment,
// role-scoped listing, status transitions, assignment, and deletion.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	enricher   Enricher
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Enricher   Enricher
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title            string
	Description      string
	StepsToReproduce *string
	Type             domain.TicketType
	Category         domain.Category
	Attachment       *string
}

// TicketListInput describes a listing request. Filter values use the "all"
// sentinel (or empty) as a no-op and match case-insensitively otherwise.
type TicketListInput struct {
	Scope    ListScope
	Type     string
	Category string
	Severity string
	Status   string
	Sort     string
	Limit    int
	Offset   int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		enricher:   deps.Enricher,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket validates the input, enriches it via the AI pipeline and
// persists the result. Enrichment never fails the creation: its fallbacks
// guarantee severity and summary are always populated.
func (s *TicketService) CreateTicket(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}
	if !input.Type.IsValid() {
		return nil, apperrors.NewValidationError("invalid ticket type", map[string]any{"type": string(input.Type)})
	}
	if !input.Category.IsValid() {
		return nil, apperrors.NewValidationError("invalid category", map[string]any{"category": string(input.Category)})
	}

	enrichment := s.enricher.Enrich(ctx, title, description)

	ticket := &domain.Ticket{
		Title:            title,
		Description:      description,
		StepsToReproduce: input.StepsToReproduce,
		Summary:          enrichment.Summary,
		Type:             input.Type,
		Category:         input.Category,
		Severity:         enrichment.Severity,
		Status:           domain.TicketStatusOpen,
		CreatedBy:        actor.ID,
		Attachment:       input.Attachment,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			OwnerID:  ticket.CreatedBy,
			Title:    ticket.Title,
			Type:     ticket.Type,
			Category: ticket.Category,
			Severity: ticket.Severity,
		},
	})
	return ticket, nil
}

// ListTickets computes the listing the actor is entitled to see. Scope
// "mine" restricts to the actor's own reports; the community listing and
// admin views see everything.
func (s *TicketService) ListTickets(ctx context.Context, actor *domain.User, input TicketListInput) ([]domain.Ticket, error) {
	filter := repository.TicketFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Scope == ScopeMine {
		ownerID := actor.ID
		filter.OwnerID = &ownerID
	}
	if v, ok := filterValue(input.Type); ok {
		t := domain.TicketType(v)
		filter.Type = &t
	}
	if v, ok := filterValue(input.Category); ok {
		c := domain.Category(v)
		filter.Category = &c
	}
	if v, ok := filterValue(input.Severity); ok {
		sev := domain.Severity(v)
		filter.Severity = &sev
	}
	if v, ok := filterValue(input.Status); ok {
		st := domain.TicketStatus(v)
		filter.Status = &st
	}

	switch strings.ToLower(strings.TrimSpace(input.Sort)) {
	case "oldest":
		filter.Sort = repository.SortOldest
	case "priority":
		filter.Sort = repository.SortPriority
	default:
		filter.Sort = repository.SortNewest
	}

	tickets, err := s.tickets.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// GetTicket fetches a single ticket. The board is shared: any authenticated
// actor may read any ticket.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// UpdateStatus applies a status transition. All six directed transitions
// among the three states are legal; only the admin role may transition.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, ticketID, newStatus string) (*domain.Ticket, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}
	status := domain.TicketStatus(strings.ToLower(strings.TrimSpace(newStatus)))
	if !status.IsValid() {
		return nil, apperrors.NewInvalidStatus(newStatus)
	}
	ticket, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketStatusChangedPayload{
			OwnerID:   ticket.CreatedBy,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// Assign sets or clears the assignee. Admin only; a nil assignee returns the
// ticket to the unassigned pool.
func (s *TicketService) Assign(ctx context.Context, actor *domain.User, ticketID string, assigneeID *string) (*domain.Ticket, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}
	var assigneeName string
	if assigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *assigneeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("assignee", map[string]any{"user_id": *assigneeID})
			}
			return nil, apperrors.MapError(err)
		}
		assigneeName = assignee.Username
	}
	ticket, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	ticket.AssignedTo = assigneeID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketAssignedPayload{
			OwnerID:          ticket.CreatedBy,
			AssigneeID:       assigneeID,
			AssigneeUsername: assigneeName,
		},
	})
	return ticket, nil
}

// Delete removes the ticket and its comments. Admin only. The cascade
// tolerates retries: comment deletion is repeated harmlessly.
func (s *TicketService) Delete(ctx context.Context, actor *domain.User, ticketID string) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbidden("admin role required")
	}
	ticket, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return err
	}

	if err := s.tickets.DeleteCascade(ctx, ticket.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketDeletedPayload{
			OwnerID: ticket.CreatedBy,
			Title:   ticket.Title,
		},
	})
	return nil
}

// filterValue normalizes an equality filter, treating "all" and empty as
// no-ops.
func filterValue(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == "all" {
		return "", false
	}
	return value, true
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
