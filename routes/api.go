package routes

import (
	api_handlers "kartoyunu.app/handlers/api"
	"kartoyunu.app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAPIRoutes /api altındaki JSON rotalarını tanımlar.
func registerAPIRoutes(app *fiber.App, db *gorm.DB) {
	// Handler instance'larını başta oluştur
	cardTypeHandler := api_handlers.NewCardTypeHandler(services.NewCardTypeService(db))
	cardHandler := api_handlers.NewCardHandler(services.NewCardService(db))

	api := app.Group("/api")

	// --- Kart Türleri ---
	api.Get("/cardtypes", cardTypeHandler.ListCardTypes)              // GET /api/cardtypes
	api.Post("/cardtypes/create", cardTypeHandler.CreateCardType)     // POST /api/cardtypes/create
	api.Get("/cardtypes/:id", cardTypeHandler.GetCardTypeByID)        // GET /api/cardtypes/{id}
	api.Get("/cardtypes/:id/cards", cardHandler.ListCardsByCardType)  // GET /api/cardtypes/{id}/cards

	// --- Kartlar ---
	api.Get("/cards", cardHandler.ListCards)          // GET /api/cards
	api.Post("/cards/create", cardHandler.CreateCard) // POST /api/cards/create
	api.Get("/cards/:id", cardHandler.GetCardByID)    // GET /api/cards/{id}
}
