package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del inventario de la tienda.
// Stock nunca es negativo y Sold solo crece; ambas reglas las garantizan las
// operaciones del ledger, nunca se corrigen aquí.
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"` // precio de venta unitario
	Stock int             `json:"stock"`
	Sold  int             `json:"sold"` // unidades vendidas acumuladas
}
