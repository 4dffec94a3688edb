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
	insertUserQuery = `
INSERT INTO users(name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password`
	selectUserByIDQuery = `SELECT id, name, email, password FROM users WHERE id=$1`
	selectAllUsersQuery = `SELECT id, name, email, password FROM users ORDER BY id`
	updateUserQuery     = `
UPDATE users
SET name = COALESCE($2, name),
    email = COALESCE($3, email),
    password = COALESCE($4, password),
    updated_at = now()
WHERE id = $1
RETURNING id, name, email, password`
	deleteUserQuery = `DELETE FROM users WHERE id=$1`
)

const uniqueViolationCode = "23505"

// CreateUser inserts a user. An email uniqueness conflict maps to ErrEmailExists.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, user.Name, user.Email, user.Password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to create user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUserByID fetches a user by primary key.
func (p *Postgres) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not found", entities.ErrQuery)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// GetAllUsers returns every registered user.
func (p *Postgres) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectAllUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("scan users: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial profile update and returns the updated record.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, updateUserQuery, id, patch.Name, patch.Email, patch.Password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not found", entities.ErrQuery)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to update user", "error", err, "user_id", id)
		return nil, fmt.Errorf("update user: %w", err)
	}

	p.log.Infow("user updated", "user_id", id)
	return &u, nil
}

// DeleteUser removes a user by primary key.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user not found", entities.ErrQuery)
	}

	p.log.Infow("user deleted", "user_id", id)
	return nil
}
