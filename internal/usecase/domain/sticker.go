// Package domain contains application usecases orchestrating domain logic by catalog.
package domain

import (
	"context"
	"fmt"

	"sticker-album/internal/entities"
)

// Sticker looks up a catalog entry by album number. Absence is not an error;
// callers branch on a nil result.
func (u *Usecase) Sticker(ctx context.Context, number int64) (*entities.Sticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if number <= 0 {
		return nil, fmt.Errorf("%w: sticker number is required", entities.ErrInvalidParam)
	}

	return u.repo.GetStickerByNumber(ctx, number)
}

// Stickers returns the full catalog ordered by album number.
func (u *Usecase) Stickers(ctx context.Context) ([]entities.Sticker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetAllStickers(ctx)
}
