package entity

import "github.com/shopspring/decimal"

// DaySummary resumen inmutable de un día de negocio ya cerrado.
// OrdersCount cuenta los pedidos creados ese día; ItemsLeft es la suma del
// stock de todos los artículos en el momento del cierre.
type DaySummary struct {
	Date        string          `json:"date"` // clave YYYY-MM-DD
	Income      decimal.Decimal `json:"income"`
	Sold        int             `json:"sold"`
	OrdersCount int             `json:"ordersCount"`
	ItemsLeft   int             `json:"itemsLeft"`
}
