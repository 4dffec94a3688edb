// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// Exchange records a sticker offered within a notification's exchange thread.
type Exchange struct {
	ID             int64
	NotificationID int64
	StickerNumber  int64
	UserID         int64
	CreatedAt      *time.Time
}

// NewExchange validates raw input and builds an Exchange.
func NewExchange(notificationID, stickerNumber, userID int64) (*Exchange, error) {
	switch {
	case notificationID == 0:
		return nil, fmt.Errorf("%w: notification id is required", ErrInvalidParam)
	case stickerNumber == 0:
		return nil, fmt.Errorf("%w: sticker number is required", ErrInvalidParam)
	case userID == 0:
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidParam)
	}

	return &Exchange{
		NotificationID: notificationID,
		StickerNumber:  stickerNumber,
		UserID:         userID,
	}, nil
}
