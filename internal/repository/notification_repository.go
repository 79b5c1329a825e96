package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// NotificationFilter selects notifications. RecipientID is always set by the
// route from the authenticated identity; notifications are never listed
// across recipients.
type NotificationFilter struct {
	RecipientID string
	UnreadOnly  bool
	Page        Page
}

// NotificationRepository encapsulates notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates the repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

const notificationColumns = `id, recipient_id, actor_id, type, title, message, entity_type, entity_id, read, created_at`

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	const query = `
        INSERT INTO notifications (recipient_id, actor_id, type, title, message, entity_type, entity_id, read)
        VALUES ($1,$2,$3,$4,$5,$6,$7,FALSE)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		n.RecipientID,
		n.ActorID,
		n.Type,
		n.Title,
		n.Message,
		n.EntityType,
		n.EntityID,
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id=$1`
	var n domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.RecipientID,
		&n.ActorID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.EntityType,
		&n.EntityID,
		&n.Read,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) List(ctx context.Context, filter NotificationFilter) ([]domain.Notification, int, error) {
	clauses := []string{"recipient_id=$1"}
	args := []any{filter.RecipientID}

	if filter.UnreadOnly {
		clauses = append(clauses, "read=FALSE")
	}
	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		notificationColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.ActorID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.EntityType,
			&n.EntityID,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, n)
	}
	return result, total, rows.Err()
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id=$1 AND read=FALSE`, recipientID,
	).Scan(&count)
	return count, err
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

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read=TRUE WHERE recipient_id=$1 AND read=FALSE`, recipientID)
	return err
}
