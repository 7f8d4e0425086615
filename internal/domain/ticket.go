package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsValid reports whether the status is one of the three known states.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// Severity enumerates urgency labels assigned at creation time.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid reports whether the severity is one of the four known labels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank maps severity to a comparable weight, critical highest.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// TicketType is the issue-type axis of classification.
type TicketType string

const (
	TicketTypeBug      TicketType = "bug"
	TicketTypeFeature  TicketType = "feature"
	TicketTypeSupport  TicketType = "support"
	TicketTypeFeedback TicketType = "feedback"
)

// IsValid reports whether the type is a known issue type.
func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeBug, TicketTypeFeature, TicketTypeSupport, TicketTypeFeedback:
		return true
	}
	return false
}

// Category is the functional-area axis of classification.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryUIUX        Category = "ui-ux"
	CategoryBackend     Category = "backend"
	CategoryFrontend    Category = "frontend"
	CategoryPerformance Category = "performance"
)

// IsValid reports whether the category is a known functional area.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryUIUX, CategoryBackend, CategoryFrontend, CategoryPerformance:
		return true
	}
	return false
}

// Ticket is the aggregate for community issue reports. Severity and Summary
// are written once by the enrichment pipeline and are not user-editable.
type Ticket struct {
	ID               string
	Title            string
	Description      string
	StepsToReproduce *string
	Summary          string
	Type             TicketType
	Category         Category
	Severity         Severity
	Status           TicketStatus
	CreatedBy        string
	AssignedTo       *string
	Attachment       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
