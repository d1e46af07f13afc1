// handlers/api/api_card_handler.go
package handlers

import (
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/pkg/validation"
	"kartoyunu.app/schemas"
	"kartoyunu.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler kart JSON endpoint'leri için handler.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler(service services.ICardService) *CardHandler {
	return &CardHandler{service: service}
}

// ListCards tüm kartları türleriyle birlikte listeler. GET /api/cards
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	result, err := h.service.GetAllCards(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListCards Error", zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}

// GetCardByID tek kartı iç içe türüyle döndürür. GET /api/cards/:id
func (h *CardHandler) GetCardByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz id"})
	}

	result, err := h.service.GetCardByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - GetCardByID Error", zap.Int("id", id), zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}

// ListCardsByCardType verilen türe ait kartları listeler. GET /api/cardtypes/:id/cards
func (h *CardHandler) ListCardsByCardType(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz id"})
	}

	result, err := h.service.GetCardsByCardType(c.UserContext(), uint(id))
	if err != nil {
		configslog.Log.Error("API - ListCardsByCardType Error", zap.Int("card_type_id", id), zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}

// CreateCard yeni kart oluşturur. POST /api/cards/create
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var input schemas.CardCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	result, err := h.service.CreateCard(c.UserContext(), input)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			return validationError(c, verrs)
		case errors.Is(err, services.ErrCardTypeReference):
			// Gövde doğru biçimde ama referans çözülemiyor
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardNameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - CreateCard Error", zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}
