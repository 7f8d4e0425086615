package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openboard/issue-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	DeleteCascade(ctx context.Context, id string) error
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	CountByStatus(ctx context.Context, ownerID *string) (map[domain.TicketStatus]int64, error)
	CountByCategory(ctx context.Context) (map[domain.Category]int64, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, steps_to_reproduce, summary, ticket_type, category, severity, status, created_by, assigned_to, attachment)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.StepsToReproduce,
		ticket.Summary,
		ticket.Type,
		ticket.Category,
		ticket.Severity,
		ticket.Status,
		ticket.CreatedBy,
		ticket.AssignedTo,
		ticket.Attachment,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

// Update persists the mutable fields only. Title, description, severity and
// summary are write-once; concurrent updates are last-writer-wins.
func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET status=$1, assigned_to=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Status,
		ticket.AssignedTo,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.StepsToReproduce,
		&ticket.Summary,
		&ticket.Type,
		&ticket.Category,
		&ticket.Severity,
		&ticket.Status,
		&ticket.CreatedBy,
		&ticket.AssignedTo,
		&ticket.Attachment,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteCascade removes the ticket's comments, then the ticket itself. Both
// statements are idempotent so a partially completed delete can be retried.
func (r *ticketRepository) DeleteCascade(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE ticket_id=$1`, id); err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) CountByStatus(ctx context.Context, ownerID *string) (map[domain.TicketStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM tickets GROUP BY status`
	args := []any{}
	if ownerID != nil {
		query = `SELECT status, COUNT(*) FROM tickets WHERE created_by=$1 GROUP BY status`
		args = append(args, *ownerID)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TicketStatus]int64)
	for rows.Next() {
		var status domain.TicketStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *ticketRepository) CountByCategory(ctx context.Context) (map[domain.Category]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM tickets GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Category]int64)
	for rows.Next() {
		var category domain.Category
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.StepsToReproduce,
			&ticket.Summary,
			&ticket.Type,
			&ticket.Category,
			&ticket.Severity,
			&ticket.Status,
			&ticket.CreatedBy,
			&ticket.AssignedTo,
			&ticket.Attachment,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
