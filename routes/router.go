package routes

import (
	"strings"

	"kartoyunu.app/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes genel middleware'leri, statik dosya servisini ve tüm API
// rotalarını ayarlar. db ve cfg referans olarak iner; handler'lar global
// durumdan değil buradan kurulur.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// --- Statik İçerik ---
	// Kart görselleri /static/images altından servis edilir.
	app.Static("/static", cfg.StaticDir)

	// --- Rota Grupları ---
	registerAPIRoutes(app, db) // /api rotaları

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
}
