package handlers_fiber

import (
	"net/http"

	"sticker-album/internal/api"
	"sticker-album/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUserSticker records one acquired sticker for a user.
func (h *Handler) PostUserSticker(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	var body api.AddStickerRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid body"))
	}

	us, err := h.uc.AddSticker(c.Context(), userID, body.Number)
	if err != nil {
		h.log.Errorw("failed to add sticker", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		UserSticker api.UserSticker `json:"user_sticker"`
	}{UserSticker: mapper.ToAPIUserSticker(*us)})
}

// GetUserStickers returns the user's collection ordered by album number.
func (h *Handler) GetUserStickers(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	list, err := h.uc.UserStickers(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		UserStickers []api.UserSticker `json:"user_stickers"`
	}{UserStickers: mapper.ToAPIUserStickerList(list)})
}

// GetUserDuplicates returns only the stickers the user holds more than once.
func (h *Handler) GetUserDuplicates(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	list, err := h.uc.UserDuplicates(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		UserStickers []api.UserSticker `json:"user_stickers"`
	}{UserStickers: mapper.ToAPIUserStickerList(list)})
}

// GetUserSticker returns the single collection row for an album number.
func (h *Handler) GetUserSticker(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}
	number, ok := paramID(c, "number")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid sticker number"))
	}

	us, err := h.uc.UserSticker(c.Context(), userID, number)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		UserSticker api.UserSticker `json:"user_sticker"`
	}{UserSticker: mapper.ToAPIUserSticker(*us)})
}

// DeleteUserSticker drops one copy of a sticker from the user's collection.
func (h *Handler) DeleteUserSticker(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}
	number, ok := paramID(c, "number")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid sticker number"))
	}

	if err := h.uc.RemoveSticker(c.Context(), userID, number); err != nil {
		h.log.Errorw("failed to remove sticker", "error", err.Error(), "user_id", userID, "number", number)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
