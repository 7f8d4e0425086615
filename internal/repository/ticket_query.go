package repository

import (
	"fmt"
	"strings"

	"github.com/openboard/issue-service/internal/domain"
)

// SortMode selects the listing order.
type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortPriority SortMode = "priority"
)

// TicketFilter captures listing parameters. Nil fields are no-ops; OwnerID
// scopes the candidate set to one creator ("my issues").
type TicketFilter struct {
	OwnerID  *string
	Type     *domain.TicketType
	Category *domain.Category
	Severity *domain.Severity
	Status   *domain.TicketStatus
	Sort     SortMode
	Limit    int
	Offset   int
}

const ticketColumns = `id, title, description, steps_to_reproduce, summary, ticket_type, category,
               severity, status, created_by, assigned_to, attachment, created_at, updated_at`

// severityRankExpr orders severity critical > high > medium > low in SQL.
const severityRankExpr = `CASE severity WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END`

// buildListQuery renders the filter into a parameterized SELECT. Every sort
// mode ends with an id tie-break so the total order is stable.
func buildListQuery(filter TicketFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("created_by=$%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("ticket_type=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Severity != nil {
		args = append(args, *filter.Severity)
		clauses = append(clauses, fmt.Sprintf("severity=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	var order string
	switch filter.Sort {
	case SortOldest:
		order = "created_at ASC, id ASC"
	case SortPriority:
		order = severityRankExpr + " DESC, created_at DESC, id DESC"
	default:
		order = "created_at DESC, id DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM tickets WHERE %s ORDER BY %s",
		ticketColumns, strings.Join(clauses, " AND "), order)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	return query, args
}
