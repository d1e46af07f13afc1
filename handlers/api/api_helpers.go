package handlers

import (
	"kartoyunu.app/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// internalError beklenmeyen hataları ayrıntı sızdırmadan 500 yanıtına çevirir.
// Asıl hata çağıran tarafından loglanmış olmalıdır.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "beklenmeyen bir hata oluştu"})
}

// validationError alan bazlı doğrulama hatalarını 400 gövdesine döker.
func validationError(c *fiber.Ctx, verrs validation.Errors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "doğrulama hatası",
		"fields": verrs,
	})
}
