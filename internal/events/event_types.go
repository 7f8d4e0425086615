package events

import (
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventCommentAdded        EventType = "comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	OwnerID  string            `json:"owner_id"`
	Title    string            `json:"title"`
	Type     domain.TicketType `json:"type"`
	Category domain.Category   `json:"category"`
	Severity domain.Severity   `json:"severity"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OwnerID   string              `json:"owner_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload. AssigneeID nil means the ticket was
// returned to the unassigned pool.
type TicketAssignedPayload struct {
	OwnerID          string  `json:"owner_id"`
	AssigneeID       *string `json:"assignee_id,omitempty"`
	AssigneeUsername string  `json:"assignee_username,omitempty"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	OwnerID     string `json:"owner_id"`
	CommentID   string `json:"comment_id"`
	AuthorID    string `json:"author_id"`
	BodyPreview string `json:"body_preview"`
}
