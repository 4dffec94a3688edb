package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"sticker-album/internal/api"
	"sticker-album/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// userIDHeader carries the acting user's id; the session middleware that
// would normally set it is outside this service.
const userIDHeader = "X-User-Id"

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
		code = api.EMAILEXISTS
		msg = "email already registered"
	case errors.Is(err, entities.ErrInvalidParam):
		status = http.StatusBadRequest
		code = api.INVALIDPARAM
		msg = err.Error()
	case errors.Is(err, entities.ErrNotAuthorized):
		status = http.StatusForbidden
		code = api.NOTAUTHORIZED
		msg = err.Error()
	case errors.Is(err, entities.ErrPermission):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = err.Error()
	case errors.Is(err, entities.ErrQuery):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

// paramID parses a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// actingUserID reads the session principal from the request header.
func actingUserID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Get(userIDHeader), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
