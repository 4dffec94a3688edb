// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// Notification is an exchange offer sent from one user to another.
type Notification struct {
	ID        int64
	From      int64
	To        int64
	CreatedAt *time.Time
}

// NewNotification validates raw input and builds a Notification.
func NewNotification(from, to int64) (*Notification, error) {
	switch {
	case from == 0:
		return nil, fmt.Errorf("%w: sender id is required", ErrInvalidParam)
	case from < 0:
		return nil, fmt.Errorf("%w: sender id must be greater than 0", ErrInvalidParam)
	case to == 0:
		return nil, fmt.Errorf("%w: recipient id is required", ErrInvalidParam)
	case to < 0:
		return nil, fmt.Errorf("%w: recipient id must be greater than 0", ErrInvalidParam)
	case to == from:
		return nil, fmt.Errorf("%w: sender and recipient must differ", ErrInvalidParam)
	}

	return &Notification{From: from, To: to}, nil
}
