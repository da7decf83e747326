package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
)

// Operaciones de mutación del ledger. Cada una lee el estado vivo bajo el
// lock, decide, y aplica su mutación combinada (artículos + acumuladores +
// logs) como una sola sección crítica; el snapshot resultante se persiste
// best-effort al salir. Cantidades fuera de rango se recortan, nunca se
// rechazan: la UI no recibe errores de validación por vender más de lo que hay.

// WalkInCustomer nombre del cliente sintético de los pedidos rápidos.
const WalkInCustomer = "Walk-in"

// AddItem crea un artículo nuevo y lo antepone al inventario.
// Precio y stock negativos se recortan a cero. No toca los acumuladores.
func (s *Store) AddItem(name string, price decimal.Decimal, stock int) entity.Item {
	if price.LessThan(decimal.Zero) {
		price = decimal.Zero
	}
	if stock < 0 {
		stock = 0
	}
	item := entity.Item{
		ID:    uuid.New().String(),
		Name:  name,
		Price: price,
		Stock: stock,
		Sold:  0,
	}

	s.mu.Lock()
	s.items = append([]entity.Item{item}, s.items...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return item
}

// AdjustStock suma delta al stock de un artículo, con piso en cero.
// Si el artículo no existe es un no-op y devuelve ok=false. No toca los
// acumuladores ni el contador Sold.
func (s *Store) AdjustStock(itemID string, delta int) (entity.Item, bool) {
	s.mu.Lock()
	idx := s.indexOfItem(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return entity.Item{}, false
	}
	newStock := s.items[idx].Stock + delta
	if newStock < 0 {
		newStock = 0
	}
	s.items[idx].Stock = newStock
	updated := s.items[idx]
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return updated, true
}

// RecordSale vende hasta qty unidades de un artículo: la cantidad efectiva es
// min(stock, qty), nunca deja stock negativo. Si el artículo no existe o la
// cantidad efectiva es cero, es un no-op y devuelve ok=false. En una venta
// efectiva descuenta stock, incrementa Sold, suma el importe a dailyIncome y
// las unidades a dailySold, y agrega la entrada al log de ventas; todo como
// una sola mutación.
func (s *Store) RecordSale(itemID string, qty int) (entity.Sale, bool) {
	s.mu.Lock()
	idx := s.indexOfItem(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return entity.Sale{}, false
	}
	sellQty := min(s.items[idx].Stock, qty)
	if sellQty <= 0 {
		s.mu.Unlock()
		return entity.Sale{}, false
	}

	amount := s.items[idx].Price.Mul(decimal.NewFromInt(int64(sellQty)))
	s.items[idx].Stock -= sellQty
	s.items[idx].Sold += sellQty
	s.dailyIncome = s.dailyIncome.Add(amount)
	s.dailySold += sellQty

	sale := entity.Sale{
		ID:     uuid.New().String(),
		ItemID: itemID,
		Qty:    sellQty,
		Total:  amount,
		Date:   s.now(),
	}
	s.sales = append(s.sales, sale)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return sale, true
}

// ReceiveOrder marca un pedido como recibido y descuenta el stock de cada
// línea, recortado por línea al stock disponible. Idempotente: si el pedido no
// existe o ya fue recibido es un no-op (ok=false).
//
// Los acumuladores suben por el valor NOMINAL del pedido: el total registrado
// y la suma de cantidades pedidas, aunque alguna línea se haya recortado por
// falta de stock. El faltante no reduce el ingreso reconocido; es una decisión
// de negocio heredada, cubierta por test.
func (s *Store) ReceiveOrder(orderID string) (entity.Order, bool) {
	s.mu.Lock()
	oidx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			oidx = i
			break
		}
	}
	if oidx < 0 || s.orders[oidx].Received {
		s.mu.Unlock()
		return entity.Order{}, false
	}

	order := s.orders[oidx]
	nominalQty := 0
	for _, line := range order.Lines {
		nominalQty += line.Qty
		idx := s.indexOfItem(line.ItemID)
		if idx < 0 {
			continue
		}
		sellQty := min(s.items[idx].Stock, line.Qty)
		if sellQty <= 0 {
			continue
		}
		s.items[idx].Stock -= sellQty
		s.items[idx].Sold += sellQty
	}
	s.dailyIncome = s.dailyIncome.Add(order.Total)
	s.dailySold += nominalQty
	s.orders[oidx].Received = true
	received := s.orders[oidx]
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return received, true
}

// CreateQuickOrder crea un pedido de mostrador para el cliente "Walk-in":
// una unidad del primer artículo del inventario, total igual a su precio,
// pendiente de recibir. Con inventario vacío es un no-op (ok=false).
// No toca los acumuladores: esos suben al recibir o vender.
func (s *Store) CreateQuickOrder() (entity.Order, bool) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return entity.Order{}, false
	}
	first := s.items[0]
	order := entity.Order{
		ID:        uuid.New().String(),
		Customer:  WalkInCustomer,
		Lines:     []entity.OrderLine{{ItemID: first.ID, Qty: 1}},
		Total:     first.Price,
		Received:  false,
		CreatedAt: s.now(),
	}
	s.orders = append([]entity.Order{order}, s.orders...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return order, true
}

// indexOfItem busca por ID; el caller sostiene mu.
func (s *Store) indexOfItem(itemID string) int {
	for i := range s.items {
		if s.items[i].ID == itemID {
			return i
		}
	}
	return -1
}
