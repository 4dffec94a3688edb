// Package entities contains core business entities.
package entities

import "fmt"

// UserSticker counts how many copies of a catalog sticker a user holds.
// At most one row exists per (user, sticker) pair; duplicates are tracked
// by Amount, never by extra rows.
type UserSticker struct {
	ID        int64
	Amount    int64
	UserID    int64
	StickerID int64

	// Sticker carries the joined catalog entry on reads; nil otherwise.
	Sticker *Sticker
}

// NewUserSticker validates raw input and builds a UserSticker.
func NewUserSticker(amount, userID, stickerID int64) (*UserSticker, error) {
	switch {
	case amount == 0:
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidParam)
	case amount < 1:
		return nil, fmt.Errorf("%w: amount must be at least 1", ErrInvalidParam)
	case userID == 0:
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidParam)
	case stickerID == 0:
		return nil, fmt.Errorf("%w: sticker id is required", ErrInvalidParam)
	}

	return &UserSticker{Amount: amount, UserID: userID, StickerID: stickerID}, nil
}
