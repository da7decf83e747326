package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/dto"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
)

// SalesHandler maneja las ventas de mostrador (protegido).
type SalesHandler struct {
	store *ledger.Store
}

// NewSalesHandler construye el handler.
func NewSalesHandler(store *ledger.Store) *SalesHandler {
	return &SalesHandler{store: store}
}

// RecordSale godoc
// @Summary      Registrar venta de mostrador
// @Description  Vende min(stock, qty) unidades: pedir más de lo disponible no es
//	error, se recorta. Con stock en cero la venta no ocurre.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "itemId, qty"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
	}
	sale, ok := h.store.RecordSale(in.ItemID, in.Qty)
	if !ok {
		// Artículo inexistente o sin stock: la venta simplemente no ocurre.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SALE", Message: "artículo no encontrado o sin stock"})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
