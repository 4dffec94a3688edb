// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"sticker-album/internal/api"
	"sticker-album/internal/entities"
)

// ToAPIUser maps entities.User to transport model, dropping the password.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToAPIUserList maps a slice of users to transport models.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// FromUpdateUserRequest builds a profile patch from the transport payload.
func FromUpdateUserRequest(src api.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{
		Name:     src.Name,
		Email:    src.Email,
		Password: src.Password,
	}
}

// ToAPISticker maps entities.Sticker to transport model.
func ToAPISticker(s entities.Sticker) api.Sticker {
	return api.Sticker{
		ID:     s.ID,
		Number: s.Number,
		Name:   s.Name,
		Team:   s.Team,
	}
}

// ToAPIStickerList maps a slice of catalog entries to transport models.
func ToAPIStickerList(list []entities.Sticker) []api.Sticker {
	res := make([]api.Sticker, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPISticker(s))
	}
	return res
}

// ToAPIUserSticker maps a collection row with its joined catalog entry.
func ToAPIUserSticker(us entities.UserSticker) api.UserSticker {
	out := api.UserSticker{
		ID:        us.ID,
		Amount:    us.Amount,
		UserID:    us.UserID,
		StickerID: us.StickerID,
	}
	if us.Sticker != nil {
		sticker := ToAPISticker(*us.Sticker)
		out.Sticker = &sticker
	}
	return out
}

// ToAPIUserStickerList maps a slice of collection rows to transport models.
func ToAPIUserStickerList(list []entities.UserSticker) []api.UserSticker {
	res := make([]api.UserSticker, 0, len(list))
	for _, us := range list {
		res = append(res, ToAPIUserSticker(us))
	}
	return res
}

// ToAPINotification maps entities.Notification to transport model.
func ToAPINotification(n entities.Notification) api.Notification {
	return api.Notification{
		ID:        n.ID,
		From:      n.From,
		To:        n.To,
		CreatedAt: n.CreatedAt,
	}
}

// ToAPINotificationList maps a slice of notifications to transport models.
func ToAPINotificationList(list []entities.Notification) []api.Notification {
	res := make([]api.Notification, 0, len(list))
	for _, n := range list {
		res = append(res, ToAPINotification(n))
	}
	return res
}

// ToAPIExchange maps entities.Exchange to transport model.
func ToAPIExchange(e entities.Exchange) api.Exchange {
	return api.Exchange{
		ID:             e.ID,
		NotificationID: e.NotificationID,
		StickerNumber:  e.StickerNumber,
		UserID:         e.UserID,
		CreatedAt:      e.CreatedAt,
	}
}

// ToAPIExchangeList maps a slice of exchanges to transport models.
func ToAPIExchangeList(list []entities.Exchange) []api.Exchange {
	res := make([]api.Exchange, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIExchange(e))
	}
	return res
}
