package handlers_fiber

import (
	"net/http"

	"sticker-album/internal/api"
	"sticker-album/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostExchange records a sticker offered within a notification's thread.
func (h *Handler) PostExchange(c *fiber.Ctx) error {
	var body api.CreateExchangeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid body"))
	}

	e, err := h.uc.CreateExchange(c.Context(), body.NotificationID, body.StickerNumber, body.UserID)
	if err != nil {
		h.log.Errorw("failed to create exchange", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Exchange api.Exchange `json:"exchange"`
	}{Exchange: mapper.ToAPIExchange(*e)})
}

// GetNotificationExchanges returns the exchange thread of a notification.
func (h *Handler) GetNotificationExchanges(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid notification id"))
	}

	list, err := h.uc.NotificationExchanges(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Exchanges []api.Exchange `json:"exchanges"`
	}{Exchanges: mapper.ToAPIExchangeList(list)})
}
