package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine una línea de pedido: referencia al artículo por ID, nunca lo embebe.
type OrderLine struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

// Order representa un pedido de cliente. Muta exactamente una vez, de
// Received=false a Received=true al recibirse; inmutable después.
type Order struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer"`
	Lines     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Received  bool            `json:"received"`
	CreatedAt time.Time       `json:"createdAt"`
}
