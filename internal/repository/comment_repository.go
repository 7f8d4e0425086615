package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openboard/issue-service/internal/domain"
)

// CommentRepository encapsulates comment persistence. Comments are
// append-only; there is no update or single delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.CommentWithAuthor, error)
	CountByTicket(ctx context.Context, ticketID string) (int64, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository instantiates repository.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (ticket_id, author_id, body)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		comment.TicketID,
		comment.AuthorID,
		comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt)
}

// ListByTicket returns the thread in ascending creation order, annotated
// with the author's display identity.
func (r *commentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.CommentWithAuthor, error) {
	const query = `
        SELECT c.id, c.ticket_id, c.author_id, c.body, c.created_at, u.username, u.email
        FROM comments c
        JOIN users u ON u.id = c.author_id
        WHERE c.ticket_id=$1
        ORDER BY c.created_at ASC, c.id ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CommentWithAuthor
	for rows.Next() {
		var comment domain.CommentWithAuthor
		if err := rows.Scan(
			&comment.ID,
			&comment.TicketID,
			&comment.AuthorID,
			&comment.Body,
			&comment.CreatedAt,
			&comment.AuthorUsername,
			&comment.AuthorEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}

func (r *commentRepository) CountByTicket(ctx context.Context, ticketID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE ticket_id=$1`, ticketID).Scan(&count)
	return count, err
}
