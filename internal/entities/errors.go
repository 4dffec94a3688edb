// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam signals a malformed or missing entity field.
	ErrInvalidParam = errors.New("invalid param")
	// ErrQuery signals an expected-but-absent persistence result.
	ErrQuery = errors.New("query error")
	// ErrNotAuthorized signals the actor lacks permission for the mutation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrPermission signals a structurally forbidden action.
	ErrPermission = errors.New("permission denied")
)

// ErrEmailExists marks the email uniqueness conflict on user creation.
// It is a kind of ErrQuery, so generic not-found handling still matches.
var ErrEmailExists = fmt.Errorf("%w: email already registered", ErrQuery)
