package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro de una venta de mostrador. Log append-only: nunca se muta ni
// se borra, y deliberadamente queda fuera del snapshot persistido.
type Sale struct {
	ID     string          `json:"id"`
	ItemID string          `json:"itemId"`
	Qty    int             `json:"qty"`
	Total  decimal.Decimal `json:"total"`
	Date   time.Time       `json:"date"`
}
