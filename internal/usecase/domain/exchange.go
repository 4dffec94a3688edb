// Package domain contains application usecases orchestrating domain logic by exchange.
package domain

import (
	"context"
	"fmt"

	"sticker-album/internal/entities"
)

// CreateExchange records a sticker offered within a notification's thread.
func (u *Usecase) CreateExchange(ctx context.Context, notificationID, stickerNumber, userID int64) (*entities.Exchange, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	e, err := entities.NewExchange(notificationID, stickerNumber, userID)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateExchange(ctx, *e)
	if err != nil {
		return nil, err
	}

	u.log.Infow("exchange recorded", "exchange_id", created.ID, "notification_id", notificationID)
	return created, nil
}

// NotificationExchanges returns the exchange thread of a notification.
func (u *Usecase) NotificationExchanges(ctx context.Context, notificationID int64) ([]entities.Exchange, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if notificationID <= 0 {
		return nil, fmt.Errorf("%w: notification id is required", entities.ErrInvalidParam)
	}

	return u.repo.GetExchangesByNotification(ctx, notificationID)
}
