package postgres

import (
	"context"
	"errors"
	"fmt"

	"sticker-album/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	// Single-statement upsert so two concurrent acquisitions of the same
	// sticker never lose an increment.
	upsertUserStickerQuery = `
INSERT INTO user_stickers(user_id, sticker_id, amount)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, sticker_id)
DO UPDATE SET amount = user_stickers.amount + 1, updated_at = now()
RETURNING id, amount, user_id, sticker_id`

	lockUserStickerQuery = `
SELECT us.id, us.amount
FROM user_stickers us
JOIN stickers s ON s.id = us.sticker_id
WHERE us.user_id = $1 AND s.number = $2
FOR UPDATE OF us`
	deleteUserStickerQuery    = `DELETE FROM user_stickers WHERE id=$1`
	decrementUserStickerQuery = `UPDATE user_stickers SET amount = amount - 1, updated_at = now() WHERE id=$1`

	selectUserStickerByNumberQuery = `
SELECT us.id, us.amount, us.user_id, us.sticker_id, s.id, s.number, s.name, s.team
FROM user_stickers us
JOIN stickers s ON s.id = us.sticker_id
WHERE us.user_id = $1 AND s.number = $2`
	selectUserStickersQuery = `
SELECT us.id, us.amount, us.user_id, us.sticker_id, s.id, s.number, s.name, s.team
FROM user_stickers us
JOIN stickers s ON s.id = us.sticker_id
WHERE us.user_id = $1
ORDER BY s.number ASC`
	selectUserDuplicatesQuery = `
SELECT us.id, us.amount, us.user_id, us.sticker_id, s.id, s.number, s.name, s.team
FROM user_stickers us
JOIN stickers s ON s.id = us.sticker_id
WHERE us.user_id = $1 AND us.amount > 1`
)

// UpsertUserSticker records one more copy of a sticker for a user: the first
// acquisition creates the row with amount 1, later ones increment in place.
func (p *Postgres) UpsertUserSticker(ctx context.Context, userID, stickerID int64) (*entities.UserSticker, error) {
	var us entities.UserSticker
	err := p.db.QueryRow(ctx, upsertUserStickerQuery, userID, stickerID).
		Scan(&us.ID, &us.Amount, &us.UserID, &us.StickerID)
	if err != nil {
		p.log.Errorw("failed to upsert user sticker", "error", err, "user_id", userID, "sticker_id", stickerID)
		return nil, fmt.Errorf("upsert user sticker: %w", err)
	}

	p.log.Infow("user sticker recorded", "user_id", userID, "sticker_id", stickerID, "amount", us.Amount)
	return &us, nil
}

// RemoveUserStickerByNumber drops one copy of a sticker: the last copy deletes
// the row, otherwise the amount is decremented. Runs in a transaction with the
// row locked so the amount can never reach zero.
func (p *Postgres) RemoveUserStickerByNumber(ctx context.Context, userID, number int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		id     int64
		amount int64
	)
	if err := tx.QueryRow(ctx, lockUserStickerQuery, userID, number).Scan(&id, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: user does not hold sticker %d", entities.ErrQuery, number)
		}
		return fmt.Errorf("lock user sticker: %w", err)
	}

	if amount <= 1 {
		if _, err := tx.Exec(ctx, deleteUserStickerQuery, id); err != nil {
			return fmt.Errorf("delete user sticker: %w", err)
		}
	} else {
		if _, err := tx.Exec(ctx, decrementUserStickerQuery, id); err != nil {
			return fmt.Errorf("decrement user sticker: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("user sticker removed", "user_id", userID, "number", number, "had_amount", amount)
	return nil
}

// GetUserStickerByNumber returns the single row for a user and catalog number,
// joined with the catalog entry.
func (p *Postgres) GetUserStickerByNumber(ctx context.Context, userID, number int64) (*entities.UserSticker, error) {
	us, err := scanUserSticker(p.db.QueryRow(ctx, selectUserStickerByNumberQuery, userID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user does not hold sticker %d", entities.ErrQuery, number)
		}
		return nil, fmt.Errorf("get user sticker: %w", err)
	}

	return us, nil
}

// GetUserStickers returns the whole collection of a user ordered by album number.
func (p *Postgres) GetUserStickers(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	return p.queryUserStickers(ctx, selectUserStickersQuery, userID)
}

// GetUserDuplicates returns only rows holding more than one copy.
func (p *Postgres) GetUserDuplicates(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	return p.queryUserStickers(ctx, selectUserDuplicatesQuery, userID)
}

func (p *Postgres) queryUserStickers(ctx context.Context, query string, userID int64) ([]entities.UserSticker, error) {
	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stickers: %w", err)
	}
	defer rows.Close()

	list := make([]entities.UserSticker, 0)
	for rows.Next() {
		us, err := scanUserSticker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user stickers: %w", err)
		}
		list = append(list, *us)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user stickers: %w", err)
	}

	return list, nil
}

func scanUserSticker(row pgx.Row) (*entities.UserSticker, error) {
	var (
		us entities.UserSticker
		s  entities.Sticker
	)
	if err := row.Scan(&us.ID, &us.Amount, &us.UserID, &us.StickerID, &s.ID, &s.Number, &s.Name, &s.Team); err != nil {
		return nil, err
	}
	us.Sticker = &s
	return &us, nil
}
