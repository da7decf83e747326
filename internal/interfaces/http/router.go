package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/auth"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *ledger.Store
	AuthUC    *auth.UseCase
	PDFUC     *report.PDFUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Estado del ledger e historial
	ledgerHandler := NewLedgerHandler(deps.Store)
	protected.Get("/ledger", ledgerHandler.GetState)
	protected.Get("/history", ledgerHandler.GetHistory)

	historyHandler := NewHistoryHandler(deps.PDFUC)
	protected.Get("/history/:date/pdf", historyHandler.GetDayClosePDF)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.Store)
	protected.Post("/items", inventoryHandler.CreateItem)
	protected.Post("/items/:id/adjust", inventoryHandler.AdjustStock)

	// Ventas de mostrador
	salesHandler := NewSalesHandler(deps.Store)
	protected.Post("/sales", salesHandler.RecordSale)

	// Pedidos
	ordersHandler := NewOrdersHandler(deps.Store)
	protected.Post("/orders/quick", ordersHandler.CreateQuickOrder)
	protected.Post("/orders/:id/receive", ordersHandler.ReceiveOrder)
}
