package handlers_fiber

import (
	"net/http"

	"sticker-album/internal/api"
	"sticker-album/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostNotification sends an exchange offer between two users.
func (h *Handler) PostNotification(c *fiber.Ctx) error {
	var body api.CreateNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid body"))
	}

	n, err := h.uc.CreateNotification(c.Context(), body.From, body.To)
	if err != nil {
		h.log.Errorw("failed to create notification", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Notification api.Notification `json:"notification"`
	}{Notification: mapper.ToAPINotification(*n)})
}

// GetUserNotifications lists notifications addressed to a user, newest first.
func (h *Handler) GetUserNotifications(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	list, err := h.uc.UserNotifications(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Notifications []api.Notification `json:"notifications"`
	}{Notifications: mapper.ToAPINotificationList(list)})
}

// DeleteNotification dismisses a notification on behalf of its recipient.
func (h *Handler) DeleteNotification(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid notification id"))
	}

	if err := h.uc.DeleteNotification(c.Context(), id, actingUserID(c)); err != nil {
		h.log.Errorw("failed to delete notification", "error", err.Error(), "notification_id", id)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
