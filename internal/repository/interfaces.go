// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"sticker-album/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByID(ctx context.Context, id int64) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// StickerInterface exposes catalog operations.
type StickerInterface interface {
	// GetStickerByNumber returns (nil, nil) when the catalog has no such number.
	GetStickerByNumber(ctx context.Context, number int64) (*entities.Sticker, error)
	CreateSticker(ctx context.Context, sticker entities.Sticker) (*entities.Sticker, error)
	GetAllStickers(ctx context.Context) ([]entities.Sticker, error)
}

// UserStickerInterface exposes per-user sticker accounting operations.
type UserStickerInterface interface {
	// UpsertUserSticker inserts the (user, sticker) row with amount 1 or
	// atomically increments an existing one.
	UpsertUserSticker(ctx context.Context, userID, stickerID int64) (*entities.UserSticker, error)
	// RemoveUserStickerByNumber deletes the row when amount is 1, decrements otherwise.
	RemoveUserStickerByNumber(ctx context.Context, userID, number int64) error
	GetUserStickerByNumber(ctx context.Context, userID, number int64) (*entities.UserSticker, error)
	// GetUserStickers returns the user's collection ordered by ascending catalog number.
	GetUserStickers(ctx context.Context, userID int64) ([]entities.UserSticker, error)
	// GetUserDuplicates returns only rows with amount > 1.
	GetUserDuplicates(ctx context.Context, userID int64) ([]entities.UserSticker, error)
}

// NotificationInterface exposes exchange-offer notification operations.
type NotificationInterface interface {
	CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error)
	GetNotificationByID(ctx context.Context, id int64) (*entities.Notification, error)
	GetNotificationsByUser(ctx context.Context, userID int64) ([]entities.Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

// ExchangeInterface exposes exchange-thread operations.
type ExchangeInterface interface {
	CreateExchange(ctx context.Context, e entities.Exchange) (*entities.Exchange, error)
	GetExchangesByNotification(ctx context.Context, notificationID int64) ([]entities.Exchange, error)
}
