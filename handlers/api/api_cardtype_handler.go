// handlers/api/api_cardtype_handler.go
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

// CardTypeHandler kart türü JSON endpoint'leri için handler.
type CardTypeHandler struct {
	service services.ICardTypeService
}

// NewCardTypeHandler yeni bir CardTypeHandler örneği oluşturur.
func NewCardTypeHandler(service services.ICardTypeService) *CardTypeHandler {
	return &CardTypeHandler{service: service}
}

// ListCardTypes tüm kart türlerini listeler. GET /api/cardtypes
func (h *CardTypeHandler) ListCardTypes(c *fiber.Ctx) error {
	result, err := h.service.GetAllCardTypes(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListCardTypes Error", zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}

// GetCardTypeByID tek kart türünü kartlarıyla birlikte döndürür. GET /api/cardtypes/:id
func (h *CardTypeHandler) GetCardTypeByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz id"})
	}

	result, err := h.service.GetCardTypeByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardTypeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - GetCardTypeByID Error", zap.Int("id", id), zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}

// CreateCardType yeni kart türü oluşturur. POST /api/cardtypes/create
func (h *CardTypeHandler) CreateCardType(c *fiber.Ctx) error {
	var input schemas.CardTypeCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	result, err := h.service.CreateCardType(c.UserContext(), input)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			return validationError(c, verrs)
		case errors.Is(err, services.ErrCardTypeNameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - CreateCardType Error", zap.Error(err))
		return internalError(c)
	}
	return c.JSON(result)
}
