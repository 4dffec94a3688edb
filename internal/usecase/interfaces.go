package usecase

import (
	"context"

	"sticker-album/internal/entities"
)

// UserUsecaseInterface abstracts user account operations for the delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, name, email, password string) (*entities.User, error)
	Users(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, actingUserID int64) (*entities.User, error)
	DeleteUser(ctx context.Context, id, actingUserID int64) error
}

// StickerUsecaseInterface abstracts catalog lookups.
type StickerUsecaseInterface interface {
	// Sticker returns (nil, nil) when the catalog has no such number.
	Sticker(ctx context.Context, number int64) (*entities.Sticker, error)
	Stickers(ctx context.Context) ([]entities.Sticker, error)
}

// UserStickerUsecaseInterface abstracts per-user sticker accounting.
type UserStickerUsecaseInterface interface {
	AddSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error)
	RemoveSticker(ctx context.Context, userID, number int64) error
	UserSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error)
	UserStickers(ctx context.Context, userID int64) ([]entities.UserSticker, error)
	UserDuplicates(ctx context.Context, userID int64) ([]entities.UserSticker, error)
}

// NotificationUsecaseInterface abstracts exchange-offer notifications.
type NotificationUsecaseInterface interface {
	CreateNotification(ctx context.Context, from, to int64) (*entities.Notification, error)
	UserNotifications(ctx context.Context, userID int64) ([]entities.Notification, error)
	DeleteNotification(ctx context.Context, id, actingUserID int64) error
}

// ExchangeUsecaseInterface abstracts exchange threads.
type ExchangeUsecaseInterface interface {
	CreateExchange(ctx context.Context, notificationID, stickerNumber, userID int64) (*entities.Exchange, error)
	NotificationExchanges(ctx context.Context, notificationID int64) ([]entities.Exchange, error)
}
