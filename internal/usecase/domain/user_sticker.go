// Package domain contains application usecases orchestrating domain logic by user sticker.
package domain

import (
	"context"
	"fmt"

	"sticker-album/internal/entities"
)

// AddSticker records one copy of a sticker for a user. An unknown album number
// creates a bare catalog row on the fly; an already-held sticker increments the
// amount instead of inserting a second row.
func (u *Usecase) AddSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if number <= 0 {
		return nil, fmt.Errorf("%w: sticker number is required", entities.ErrInvalidParam)
	}

	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sticker, err := u.repo.GetStickerByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if sticker == nil {
		sticker, err = u.repo.CreateSticker(ctx, entities.Sticker{Number: number})
		if err != nil {
			return nil, err
		}
	}

	if _, err := entities.NewUserSticker(1, user.ID, sticker.ID); err != nil {
		return nil, err
	}

	us, err := u.repo.UpsertUserSticker(ctx, user.ID, sticker.ID)
	if err != nil {
		return nil, err
	}
	us.Sticker = sticker

	u.log.Infow("sticker added", "user_id", user.ID, "number", number, "amount", us.Amount)
	return us, nil
}

// RemoveSticker drops one copy of a sticker from a user's collection: the last
// copy removes the row entirely, otherwise the amount is decremented.
func (u *Usecase) RemoveSticker(ctx context.Context, userID, number int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if number <= 0 {
		return fmt.Errorf("%w: sticker number is required", entities.ErrInvalidParam)
	}

	if _, err := u.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	return u.repo.RemoveUserStickerByNumber(ctx, userID, number)
}

// UserSticker returns the single collection row for a user and album number.
func (u *Usecase) UserSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: sticker number is required", entities.ErrInvalidParam)
	}

	return u.repo.GetUserStickerByNumber(ctx, userID, number)
}

// UserStickers returns the whole collection ordered by ascending album number,
// the order the album is rendered in.
func (u *Usecase) UserStickers(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}

	return u.repo.GetUserStickers(ctx, userID)
}

// UserDuplicates returns only the stickers a user holds more than once.
func (u *Usecase) UserDuplicates(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}

	return u.repo.GetUserDuplicates(ctx, userID)
}
