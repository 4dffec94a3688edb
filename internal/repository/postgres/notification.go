package postgres

import (
	"context"
	"errors"
	"fmt"

	"sticker-album/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertNotificationQuery = `
INSERT INTO notifications(from_user, to_user)
VALUES ($1, $2)
RETURNING id, from_user, to_user, created_at`
	selectNotificationByIDQuery = `
SELECT id, from_user, to_user, created_at FROM notifications WHERE id=$1`
	selectNotificationsByUserQuery = `
SELECT id, from_user, to_user, created_at
FROM notifications
WHERE to_user = $1
ORDER BY created_at DESC, id DESC`
	deleteNotificationQuery = `DELETE FROM notifications WHERE id=$1`
)

const foreignKeyViolationCode = "23503"

// CreateNotification persists an exchange offer addressed to a user.
// A foreign key violation means one of the parties does not exist.
func (p *Postgres) CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	var out entities.Notification
	err := p.db.QueryRow(ctx, insertNotificationQuery, n.From, n.To).
		Scan(&out.ID, &out.From, &out.To, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, fmt.Errorf("%w: user not found", entities.ErrQuery)
		}
		p.log.Errorw("failed to create notification", "error", err, "from", n.From, "to", n.To)
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	p.log.Infow("notification created", "notification_id", out.ID, "from", out.From, "to", out.To)
	return &out, nil
}

// GetNotificationByID fetches a notification by primary key.
func (p *Postgres) GetNotificationByID(ctx context.Context, id int64) (*entities.Notification, error) {
	var n entities.Notification
	err := p.db.QueryRow(ctx, selectNotificationByIDQuery, id).
		Scan(&n.ID, &n.From, &n.To, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: notification not found", entities.ErrQuery)
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}

	return &n, nil
}

// GetNotificationsByUser returns notifications addressed to a user, newest first.
func (p *Postgres) GetNotificationsByUser(ctx context.Context, userID int64) ([]entities.Notification, error) {
	rows, err := p.db.Query(ctx, selectNotificationsByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.From, &n.To, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notifications: %w", err)
		}
		list = append(list, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return list, nil
}

// DeleteNotification removes a notification and, via cascade, its exchange thread.
func (p *Postgres) DeleteNotification(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteNotificationQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete notification", "error", err, "notification_id", id)
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification not found", entities.ErrQuery)
	}

	p.log.Infow("notification deleted", "notification_id", id)
	return nil
}
