package postgres

import (
	"context"
	"errors"
	"fmt"

	"sticker-album/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectStickerByNumberQuery = `SELECT id, number, name, team FROM stickers WHERE number=$1`
	insertStickerQuery         = `
INSERT INTO stickers(number, name, team)
VALUES ($1, $2, $3)
RETURNING id, number, name, team`
	selectAllStickersQuery = `SELECT id, number, name, team FROM stickers ORDER BY number`
)

// GetStickerByNumber looks up a catalog entry. Absence is not an error:
// callers branch on a nil result to decide create-vs-reuse.
func (p *Postgres) GetStickerByNumber(ctx context.Context, number int64) (*entities.Sticker, error) {
	var s entities.Sticker
	err := p.db.QueryRow(ctx, selectStickerByNumberQuery, number).
		Scan(&s.ID, &s.Number, &s.Name, &s.Team)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sticker: %w", err)
	}

	return &s, nil
}

// CreateSticker inserts a catalog entry.
func (p *Postgres) CreateSticker(ctx context.Context, sticker entities.Sticker) (*entities.Sticker, error) {
	var s entities.Sticker
	err := p.db.QueryRow(ctx, insertStickerQuery, sticker.Number, sticker.Name, sticker.Team).
		Scan(&s.ID, &s.Number, &s.Name, &s.Team)
	if err != nil {
		p.log.Errorw("failed to create sticker", "error", err, "number", sticker.Number)
		return nil, fmt.Errorf("insert sticker: %w", err)
	}

	p.log.Infow("sticker created", "sticker_id", s.ID, "number", s.Number)
	return &s, nil
}

// GetAllStickers returns the whole catalog ordered by album number.
func (p *Postgres) GetAllStickers(ctx context.Context) ([]entities.Sticker, error) {
	rows, err := p.db.Query(ctx, selectAllStickersQuery)
	if err != nil {
		return nil, fmt.Errorf("get stickers: %w", err)
	}
	defer rows.Close()

	stickers := make([]entities.Sticker, 0)
	for rows.Next() {
		var s entities.Sticker
		if err := rows.Scan(&s.ID, &s.Number, &s.Name, &s.Team); err != nil {
			return nil, fmt.Errorf("scan stickers: %w", err)
		}
		stickers = append(stickers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stickers: %w", err)
	}

	return stickers, nil
}
