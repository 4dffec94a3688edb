// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"sticker-album/internal/entities"
)

// CreateUser registers a new collector account.
func (u *Usecase) CreateUser(ctx context.Context, name, email, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := entities.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateUser(ctx, *user)
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", created.ID)
	return created, nil
}

// Users lists every registered user. An empty album community is a valid,
// empty result rather than an error.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetAllUsers(ctx)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}

	return u.repo.GetUserByID(ctx, id)
}

// UpdateUser applies a profile patch. Only the account owner may edit it.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, actingUserID int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}
	if actingUserID != id {
		return nil, fmt.Errorf("%w: users may only edit their own profile", entities.ErrNotAuthorized)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", entities.ErrInvalidParam)
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	return u.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser removes an account. Self-deletion is structurally forbidden.
func (u *Usecase) DeleteUser(ctx context.Context, id, actingUserID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidParam)
	}
	if actingUserID == id {
		return fmt.Errorf("%w: users cannot delete themselves", entities.ErrPermission)
	}

	return u.repo.DeleteUser(ctx, id)
}
