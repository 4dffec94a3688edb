// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"sticker-album/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler maps HTTP routes onto the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes binds all routes of the sticker album API.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/users", h.PostUser)
	app.Get("/users", h.GetUsers)
	app.Get("/users/:id", h.GetUser)
	app.Put("/users/:id", h.PutUser)
	app.Delete("/users/:id", h.DeleteUser)

	app.Post("/users/:id/stickers", h.PostUserSticker)
	app.Get("/users/:id/stickers", h.GetUserStickers)
	app.Get("/users/:id/stickers/duplicates", h.GetUserDuplicates)
	app.Get("/users/:id/stickers/:number", h.GetUserSticker)
	app.Delete("/users/:id/stickers/:number", h.DeleteUserSticker)

	app.Get("/stickers", h.GetStickers)
	app.Get("/stickers/:number", h.GetSticker)

	app.Post("/notifications", h.PostNotification)
	app.Get("/users/:id/notifications", h.GetUserNotifications)
	app.Delete("/notifications/:id", h.DeleteNotification)

	app.Post("/exchanges", h.PostExchange)
	app.Get("/notifications/:id/exchanges", h.GetNotificationExchanges)
}
