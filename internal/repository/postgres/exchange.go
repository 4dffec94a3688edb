package postgres

import (
	"context"
	"errors"
	"fmt"

	"sticker-album/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertExchangeQuery = `
INSERT INTO exchanges(notification_id, sticker_number, user_id)
VALUES ($1, $2, $3)
RETURNING id, notification_id, sticker_number, user_id, created_at`
	selectExchangesByNotificationQuery = `
SELECT id, notification_id, sticker_number, user_id, created_at
FROM exchanges
WHERE notification_id = $1
ORDER BY created_at, id`
)

// CreateExchange persists a sticker offer inside a notification's thread.
func (p *Postgres) CreateExchange(ctx context.Context, e entities.Exchange) (*entities.Exchange, error) {
	var out entities.Exchange
	err := p.db.QueryRow(ctx, insertExchangeQuery, e.NotificationID, e.StickerNumber, e.UserID).
		Scan(&out.ID, &out.NotificationID, &out.StickerNumber, &out.UserID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, fmt.Errorf("%w: notification not found", entities.ErrQuery)
		}
		p.log.Errorw("failed to create exchange", "error", err, "notification_id", e.NotificationID)
		return nil, fmt.Errorf("insert exchange: %w", err)
	}

	p.log.Infow("exchange created", "exchange_id", out.ID, "notification_id", out.NotificationID)
	return &out, nil
}

// GetExchangesByNotification returns the exchange thread of a notification.
func (p *Postgres) GetExchangesByNotification(ctx context.Context, notificationID int64) ([]entities.Exchange, error) {
	rows, err := p.db.Query(ctx, selectExchangesByNotificationQuery, notificationID)
	if err != nil {
		return nil, fmt.Errorf("get exchanges: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Exchange, 0)
	for rows.Next() {
		var e entities.Exchange
		if err := rows.Scan(&e.ID, &e.NotificationID, &e.StickerNumber, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchanges: %w", err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchanges: %w", err)
	}

	return list, nil
}
