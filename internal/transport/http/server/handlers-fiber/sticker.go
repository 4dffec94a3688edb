package handlers_fiber

import (
	"net/http"

	"sticker-album/internal/api"
	"sticker-album/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetStickers returns the whole catalog ordered by album number.
func (h *Handler) GetStickers(c *fiber.Ctx) error {
	stickers, err := h.uc.Stickers(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Stickers []api.Sticker `json:"stickers"`
	}{Stickers: mapper.ToAPIStickerList(stickers)})
}

// GetSticker returns one catalog entry by album number.
func (h *Handler) GetSticker(c *fiber.Ctx) error {
	number, ok := paramID(c, "number")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid sticker number"))
	}

	sticker, err := h.uc.Sticker(c.Context(), number)
	if err != nil {
		return writeError(c, err)
	}
	if sticker == nil {
		return c.Status(http.StatusNotFound).JSON(errorResponse(api.NOTFOUND, "sticker not in catalog"))
	}

	return c.Status(http.StatusOK).JSON(struct {
		Sticker api.Sticker `json:"sticker"`
	}{Sticker: mapper.ToAPISticker(*sticker)})
}
