package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openboard/issue-service/internal/domain"
)

// NotificationRepository encapsulates notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (user_id, message, link)
        VALUES ($1,$2,$3)
        RETURNING id, read, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.UserID,
		notification.Message,
		notification.Link,
	).Scan(&notification.ID, &notification.Read, &notification.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	const query = `
        SELECT id, user_id, message, link, read, created_at
        FROM notifications WHERE id=$1`
	var notification domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Message,
		&notification.Link,
		&notification.Read,
		&notification.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByUser returns the recipient's notifications newest first.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	const query = `
        SELECT id, user_id, message, link, read, created_at
        FROM notifications WHERE user_id=$1
        ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.Link,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notifications SET read=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
