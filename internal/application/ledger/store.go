// Package ledger implementa el núcleo del POS: el contenedor de estado del
// libro diario, las operaciones de mutación, la reconciliación al arranque y
// el cierre de día (rollover) por scheduler.
package ledger

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/calendar"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/repository"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

// saveTimeout límite por intento de persistencia en segundo plano.
const saveTimeout = 5 * time.Second

// Store contenedor del estado canónico del ledger. Se construye una sola vez
// al arranque (vía Reconciler) y se comparte por referencia con los handlers y
// el scheduler; no hay estado global.
//
// Hay un único mutador lógico: toda lectura-decisión-mutación ocurre como una
// sección crítica bajo mu, de modo que cada operación trabaja siempre sobre el
// estado vivo al momento de ejecutarse y aplica su mutación multi-campo como
// una unidad. Los callbacks de timer pasan por el mismo camino.
type Store struct {
	mu sync.Mutex

	currentDate string // clave YYYY-MM-DD del día en curso
	dailyIncome decimal.Decimal
	dailySold   int
	history     []entity.DaySummary // más reciente primero
	items       []entity.Item
	orders      []entity.Order
	sales       []entity.Sale // solo en memoria, no se persiste

	repo repository.SnapshotRepository
	log  *logger.Logger
	now  func() time.Time

	// Cola de persistencia: un único escritor en vuelo y un slot con el
	// último snapshot pendiente. Cada snapshot es completo, así que los
	// intermedios se descartan y el último siempre gana en el storage.
	saveMu  sync.Mutex
	pending *entity.Snapshot
	saving  bool
	saves   sync.WaitGroup
}

// View copia desacoplada del estado observable por la UI.
type View struct {
	CurrentDate string              `json:"currentDate"`
	DailyIncome decimal.Decimal     `json:"dailyIncome"`
	DailySold   int                 `json:"dailySold"`
	Items       []entity.Item       `json:"items"`
	Orders      []entity.Order      `json:"orders"`
	Sales       []entity.Sale       `json:"sales"`
	History     []entity.DaySummary `json:"history"`
}

// View devuelve una copia del estado actual. Los handlers solo leen por aquí.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		CurrentDate: s.currentDate,
		DailyIncome: s.dailyIncome,
		DailySold:   s.dailySold,
		Items:       slices.Clone(s.items),
		Orders:      cloneOrders(s.orders),
		Sales:       slices.Clone(s.sales),
		History:     slices.Clone(s.history),
	}
}

// Summary devuelve el resumen archivado de un día cerrado, si existe.
func (s *Store) Summary(date string) (entity.DaySummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.history {
		if d.Date == date {
			return d, true
		}
	}
	return entity.DaySummary{}, false
}

// RolloverIfDue compara el día calendario actual contra currentDate y, si
// difieren, ejecuta la transición de cierre. Es el punto de entrada común de
// los dos triggers del scheduler; devuelve true si hubo cierre.
//
// El día "hoy" se recalcula aquí, al momento de la invocación: un callback
// armado ayer no arrastra valores capturados al armarse.
func (s *Store) RolloverIfDue() bool {
	today := calendar.DayKey(s.now())

	s.mu.Lock()
	oldDate := s.currentDate
	closed := s.archiveAndReset(oldDate, today)
	var snap *entity.Snapshot
	if closed {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if closed {
		s.log.Info().Str("cerrado", oldDate).Str("nuevo", today).Msg("día archivado")
		s.persist(snap)
	}
	return closed
}

// archiveAndReset transición Archive-and-Reset compartida por la
// reconciliación y por ambos triggers del scheduler. El caller sostiene mu.
//
// Idempotente por construcción: un segundo disparo para la misma transición
// observa oldDate == currentDate ya avanzado y no hace nada, y nunca entran
// dos resúmenes con la misma fecha al historial.
func (s *Store) archiveAndReset(oldDate, newDate string) bool {
	if oldDate == "" || oldDate == newDate {
		return false
	}
	if oldDate != s.currentDate {
		return false // transición ya ejecutada por el otro trigger
	}
	if len(s.history) > 0 && s.history[0].Date == oldDate {
		return false
	}

	ordersCount := 0
	for _, o := range s.orders {
		if calendar.SameDay(o.CreatedAt, oldDate) {
			ordersCount++
		}
	}
	itemsLeft := 0
	for _, it := range s.items {
		itemsLeft += it.Stock
	}

	summary := entity.DaySummary{
		Date:        oldDate,
		Income:      s.dailyIncome,
		Sold:        s.dailySold,
		OrdersCount: ordersCount,
		ItemsLeft:   itemsLeft,
	}
	s.history = append([]entity.DaySummary{summary}, s.history...)
	s.dailyIncome = decimal.Zero
	s.dailySold = 0
	s.currentDate = newDate
	return true
}

// snapshotLocked arma el snapshot persistible (las ventas quedan fuera).
// El caller sostiene mu.
func (s *Store) snapshotLocked() *entity.Snapshot {
	return &entity.Snapshot{
		Date:        s.currentDate,
		DailyIncome: s.dailyIncome,
		DailySold:   s.dailySold,
		History:     slices.Clone(s.history),
		Items:       slices.Clone(s.items),
		Orders:      cloneOrders(s.orders),
	}
}

// persist encola el snapshot para guardarlo en segundo plano, best-effort:
// un fallo se reporta al logger y el estado en memoria sigue siendo el
// canónico. Los guardados van en serie por un único escritor: dos operaciones
// seguidas nunca pueden llegar al storage en orden invertido, y un snapshot
// pendiente más nuevo reemplaza al que todavía no se escribió.
func (s *Store) persist(snap *entity.Snapshot) {
	s.saveMu.Lock()
	s.pending = snap
	if s.saving {
		// Ya hay un escritor en vuelo; tomará este snapshot al terminar.
		s.saveMu.Unlock()
		return
	}
	s.saving = true
	s.saves.Add(1)
	s.saveMu.Unlock()
	go s.drainSaves()
}

// drainSaves escribe snapshots pendientes hasta vaciar el slot.
func (s *Store) drainSaves() {
	defer s.saves.Done()
	for {
		s.saveMu.Lock()
		snap := s.pending
		s.pending = nil
		if snap == nil {
			s.saving = false
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.repo.Save(ctx, snap)
		cancel()
		if err != nil {
			s.log.Warn().Err(err).Msg("no se pudo persistir el snapshot del ledger")
		}
	}
}

// Flush espera las persistencias en vuelo. Se usa al apagar y en tests.
func (s *Store) Flush() {
	s.saves.Wait()
}

func cloneOrders(orders []entity.Order) []entity.Order {
	out := slices.Clone(orders)
	for i := range out {
		out[i].Lines = slices.Clone(out[i].Lines)
	}
	return out
}
