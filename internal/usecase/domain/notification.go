// Package domain contains application usecases orchestrating domain logic by notification.
package domain

import (
	"context"
	"fmt"

	"sticker-album/internal/entities"
)

// CreateNotification sends an exchange offer from one user to another.
func (u *Usecase) CreateNotification(ctx context.Context, from, to int64) (*entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	n, err := entities.NewNotification(from, to)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateNotification(ctx, *n)
	if err != nil {
		return nil, err
	}

	u.log.Infow("notification sent", "notification_id", created.ID, "from", from, "to", to)
	return created, nil
}

// UserNotifications lists notifications addressed to a user, newest first.
func (u *Usecase) UserNotifications(ctx context.Context, userID int64) ([]entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}

	return u.repo.GetNotificationsByUser(ctx, userID)
}

// DeleteNotification dismisses a notification. Only the recipient may do so.
func (u *Usecase) DeleteNotification(ctx context.Context, id, actingUserID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: notification id is required", entities.ErrInvalidParam)
	}

	n, err := u.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return err
	}
	if n.To != actingUserID {
		return fmt.Errorf("%w: only the recipient may dismiss a notification", entities.ErrNotAuthorized)
	}

	return u.repo.DeleteNotification(ctx, id)
}
