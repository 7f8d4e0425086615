package dto

import (
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

// CreateTicketRequest payload. Severity and summary are absent on purpose:
// they are produced by the enrichment pipeline, never accepted from callers.
type CreateTicketRequest struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	StepsToReproduce *string `json:"steps_to_reproduce"`
	Type             string  `json:"type" validate:"required,oneof=bug feature support feedback"`
	Category         string  `json:"category" validate:"required,oneof=general ui-ux backend frontend performance"`
	Attachment       *string `json:"attachment"`
}

// UpdateStatusRequest payload. The enum is checked by the service so an
// out-of-range value reports INVALID_STATUS rather than a generic
// validation failure.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignTicketRequest payload. A null assignee clears the assignment.
type AssignTicketRequest struct {
	AssigneeID *string `json:"assignee_id"`
}

// TicketResponse is the full ticket representation.
type TicketResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	StepsToReproduce *string             `json:"steps_to_reproduce,omitempty"`
	Summary          string              `json:"summary"`
	Type             domain.TicketType   `json:"type"`
	Category         domain.Category     `json:"category"`
	Severity         domain.Severity     `json:"severity"`
	Status           domain.TicketStatus `json:"status"`
	CreatedBy        string              `json:"created_by"`
	AssignedTo       *string             `json:"assigned_to,omitempty"`
	Attachment       *string             `json:"attachment,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:               ticket.ID,
		Title:            ticket.Title,
		Description:      ticket.Description,
		StepsToReproduce: ticket.StepsToReproduce,
		Summary:          ticket.Summary,
		Type:             ticket.Type,
		Category:         ticket.Category,
		Severity:         ticket.Severity,
		Status:           ticket.Status,
		CreatedBy:        ticket.CreatedBy,
		AssignedTo:       ticket.AssignedTo,
		Attachment:       ticket.Attachment,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
	}
}

// NewTicketResponses maps a listing.
func NewTicketResponses(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketResponse(&tickets[i]))
	}
	return items
}
