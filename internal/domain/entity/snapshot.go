package entity

import "github.com/shopspring/decimal"

// Snapshot es la forma persistida del estado del ledger. Las ventas (Sale)
// quedan fuera a propósito: el log de mostrador solo vive en memoria.
type Snapshot struct {
	Date        string          `json:"date"` // clave YYYY-MM-DD del día en curso
	DailyIncome decimal.Decimal `json:"dailyIncome"`
	DailySold   int             `json:"dailySold"`
	History     []DaySummary    `json:"history"`
	Items       []Item          `json:"items"`
	Orders      []Order         `json:"orders"`
}
