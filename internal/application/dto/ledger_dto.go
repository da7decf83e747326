package dto

import "github.com/shopspring/decimal"

// CreateItemRequest alta de artículo en el inventario.
// Precio y stock negativos se recortan a cero, no se rechazan.
type CreateItemRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// AdjustStockRequest ajuste manual de stock (delta positivo o negativo).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// RecordSaleRequest venta de mostrador. Qty se recorta al stock disponible.
type RecordSaleRequest struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}
