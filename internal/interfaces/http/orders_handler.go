package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/dto"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
)

// OrdersHandler maneja los pedidos de clientes (protegido).
type OrdersHandler struct {
	store *ledger.Store
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(store *ledger.Store) *OrdersHandler {
	return &OrdersHandler{store: store}
}

// CreateQuickOrder godoc
// @Summary      Crear pedido rápido de mostrador
// @Description  Pedido "Walk-in" por una unidad del primer artículo del inventario.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  entity.Order
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/quick [post]
func (h *OrdersHandler) CreateQuickOrder(c *fiber.Ctx) error {
	order, ok := h.store.CreateQuickOrder()
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_INVENTORY", Message: domain.ErrEmptyInventory.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// ReceiveOrder godoc
// @Summary      Recibir un pedido
// @Description  Descuenta stock por línea (recortado a lo disponible) y suma el
//	total nominal del pedido a los acumuladores del día. Idempotente: un pedido
//	ya recibido no vuelve a mutar nada.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receive [post]
func (h *OrdersHandler) ReceiveOrder(c *fiber.Ctx) error {
	order, ok := h.store.ReceiveOrder(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado o ya recibido"})
	}
	return c.JSON(order)
}
