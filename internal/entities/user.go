// Package entities contains core business entities.
package entities

import "fmt"

const minPasswordLen = 8

// User is a registered collector account.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
}

// NewUser validates raw input and builds a User.
// Checks run in a fixed order; the first violated rule is returned.
func NewUser(name, email, password string) (*User, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidParam)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", ErrInvalidParam)
	case password == "":
		return nil, fmt.Errorf("%w: password is required", ErrInvalidParam)
	case len(password) < minPasswordLen:
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidParam, minPasswordLen)
	}

	return &User{Name: name, Email: email, Password: password}, nil
}

// UserPatch carries optional profile fields for an update.
// Nil pointers mean "leave unchanged".
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Validate rejects patches that would write invalid values.
func (p UserPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidParam)
	}
	if p.Email != nil && *p.Email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrInvalidParam)
	}
	if p.Password != nil && len(*p.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidParam, minPasswordLen)
	}
	return nil
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
