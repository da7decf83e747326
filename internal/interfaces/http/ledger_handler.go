package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
)

// LedgerHandler expone el modelo de lectura del ledger (la UI solo lee por aquí).
type LedgerHandler struct {
	store *ledger.Store
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(store *ledger.Store) *LedgerHandler {
	return &LedgerHandler{store: store}
}

// GetState godoc
// @Summary      Estado completo del ledger
// @Description  Día en curso, acumuladores, inventario, pedidos, ventas e historial.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  ledger.View
// @Router       /api/ledger [get]
func (h *LedgerHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.store.View())
}

// GetHistory godoc
// @Summary      Historial de días cerrados
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.DaySummary
// @Router       /api/history [get]
func (h *LedgerHandler) GetHistory(c *fiber.Ctx) error {
	view := h.store.View()
	return c.JSON(fiber.Map{
		"total":   len(view.History),
		"history": view.History,
	})
}
