package routes

import (
	"github.com/campusfind/backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	itemHandler *handlers.ItemHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)
	api.Get("/categories", itemHandler.Categories)

	items := api.Group("/items")
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/recent", itemHandler.Recent)
	items.Get("/:id", itemHandler.Get)
	items.Post("/:id/contact", contactHandler.Create)
}
