package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/dto"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido).
type InventoryHandler struct {
	store *ledger.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *ledger.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// CreateItem godoc
// @Summary      Crear artículo
// @Description  Precio y stock negativos se recortan a cero; no afecta los acumuladores del día.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, price, stock"
// @Success      201   {object}  entity.Item
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
	}
	item := h.store.AddItem(in.Name, in.Price, in.Stock)
	return c.Status(fiber.StatusCreated).JSON(item)
}

// AdjustStock godoc
// @Summary      Ajustar stock de un artículo
// @Description  Suma delta al stock con piso en cero. El contador de vendidos no cambia.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.AdjustStockRequest  true  "delta"
// @Success      200   {object}  entity.Item
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
	}
	item, ok := h.store.AdjustStock(c.Params("id"), in.Delta)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}
