package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
)

// DefaultSeed catálogo inicial de la tienda para un arranque sin snapshot:
// tres prendas y un pedido pendiente de Alice por dos Classic Tee.
func DefaultSeed() ([]entity.Item, []entity.Order) {
	tee := entity.Item{
		ID:    uuid.New().String(),
		Name:  "Classic Tee",
		Price: decimal.NewFromFloat(19.99),
		Stock: 50,
		Sold:  8,
	}
	jacket := entity.Item{
		ID:    uuid.New().String(),
		Name:  "Denim Jacket",
		Price: decimal.NewFromFloat(59.99),
		Stock: 12,
		Sold:  3,
	}
	dress := entity.Item{
		ID:    uuid.New().String(),
		Name:  "Summer Dress",
		Price: decimal.NewFromFloat(39.5),
		Stock: 25,
		Sold:  5,
	}

	order := entity.Order{
		ID:        uuid.New().String(),
		Customer:  "Alice",
		Lines:     []entity.OrderLine{{ItemID: tee.ID, Qty: 2}},
		Total:     decimal.NewFromFloat(39.98),
		Received:  false,
		CreatedAt: time.Now(),
	}

	return []entity.Item{tee, jacket, dress}, []entity.Order{order}
}
