package handlers_fiber

import (
	"net/http"

	"sticker-album/internal/api"
	"sticker-album/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUser registers a new user.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid body"))
	}

	user, err := h.uc.CreateUser(c.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// GetUsers lists every registered user.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	user, err := h.uc.User(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// PutUser applies a profile patch on behalf of the acting user.
func (h *Handler) PutUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid body"))
	}

	user, err := h.uc.UpdateUser(c.Context(), id, mapper.FromUpdateUserRequest(body), actingUserID(c))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// DeleteUser removes a user on behalf of the acting user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDPARAM, "invalid user id"))
	}

	if err := h.uc.DeleteUser(c.Context(), id, actingUserID(c)); err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
