// Package api defines the transport DTOs and error codes of the HTTP layer.
package api

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	INVALIDPARAM  ErrorCode = "INVALID_PARAM"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	EMAILEXISTS   ErrorCode = "EMAIL_EXISTS"
	NOTAUTHORIZED ErrorCode = "NOT_AUTHORIZED"
	FORBIDDEN     ErrorCode = "FORBIDDEN"
	INTERNAL      ErrorCode = "INTERNAL"
)

// ErrorBody is the inner error payload.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the transport projection of an account. The password is never echoed.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries optional profile fields; absent fields stay unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Sticker is a catalog entry.
type Sticker struct {
	ID     int64  `json:"id"`
	Number int64  `json:"number"`
	Name   string `json:"name"`
	Team   string `json:"team"`
}

// UserSticker is a collection row joined with its catalog entry.
type UserSticker struct {
	ID        int64    `json:"id"`
	Amount    int64    `json:"amount"`
	UserID    int64    `json:"user_id"`
	StickerID int64    `json:"sticker_id"`
	Sticker   *Sticker `json:"sticker,omitempty"`
}

// AddStickerRequest records one acquired sticker by album number.
type AddStickerRequest struct {
	Number int64 `json:"number"`
}

// Notification is an exchange offer between two users.
type Notification struct {
	ID        int64      `json:"id"`
	From      int64      `json:"from"`
	To        int64      `json:"to"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateNotificationRequest is the offer payload.
type CreateNotificationRequest struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Exchange is one offered sticker inside a notification's thread.
type Exchange struct {
	ID             int64      `json:"id"`
	NotificationID int64      `json:"notification_id"`
	StickerNumber  int64      `json:"sticker_number"`
	UserID         int64      `json:"user_id"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// CreateExchangeRequest is the exchange payload.
type CreateExchangeRequest struct {
	NotificationID int64 `json:"notification_id"`
	StickerNumber  int64 `json:"sticker_number"`
	UserID         int64 `json:"user_id"`
}
