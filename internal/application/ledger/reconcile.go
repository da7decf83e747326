package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/calendar"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/repository"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

// Reconciler construye el Store inicial al arranque a partir del último
// snapshot persistido. Corre una sola vez, de forma síncrona, antes de que
// cualquier operación sea alcanzable.
type Reconciler struct {
	repo repository.SnapshotRepository
	log  *logger.Logger
	now  func() time.Time
	seed func() ([]entity.Item, []entity.Order)
}

// Option ajusta el Reconciler (reloj y seed inyectables para tests).
type Option func(*Reconciler)

// WithClock reemplaza la fuente de "ahora".
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) { r.now = now }
}

// WithSeed reemplaza los datos iniciales usados cuando no hay snapshot previo.
func WithSeed(seed func() ([]entity.Item, []entity.Order)) Option {
	return func(r *Reconciler) { r.seed = seed }
}

// NewReconciler construye el motor de reconciliación.
func NewReconciler(repo repository.SnapshotRepository, log *logger.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		repo: repo,
		log:  log,
		now:  time.Now,
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run carga el snapshot y decide entre tres caminos:
//
//  1. Sin snapshot (ausente o corrupto): estado nuevo con el seed de la
//     aplicación y currentDate = hoy.
//  2. snapshot.Date == hoy: se reanuda el día tal cual quedó persistido.
//  3. snapshot.Date distinto y no vacío: el día guardado quedó sin cerrar
//     mientras la app estuvo apagada; se archiva UN solo resumen para esa
//     última fecha conocida (aunque hayan pasado varios días: los días
//     intermedios no generan registro) y se arranca hoy en cero.
//
// Solo en el camino 3 hubo corrección, y solo entonces se re-persiste, de
// forma síncrona: todavía no hay operaciones concurrentes.
func (r *Reconciler) Run(ctx context.Context) (*Store, error) {
	today := calendar.DayKey(r.now())

	s := &Store{
		repo: r.repo,
		log:  r.log,
		now:  r.now,
	}

	snap, err := r.repo.Load(ctx)
	if err != nil {
		// El contrato de persistencia degrada a "sin estado previo".
		r.log.Warn().Err(err).Msg("no se pudo leer el snapshot; arrancando de cero")
		snap = nil
	}

	if snap == nil {
		items, orders := r.seed()
		s.currentDate = today
		s.items = items
		s.orders = orders
		r.log.Info().Str("fecha", today).Int("items", len(items)).Msg("ledger inicializado con datos seed")
		return s, nil
	}

	s.items = snap.Items
	s.orders = snap.Orders
	s.history = snap.History
	s.currentDate = today

	if snap.Date == today {
		s.dailyIncome = snap.DailyIncome
		s.dailySold = snap.DailySold
		r.log.Info().Str("fecha", today).Msg("día en curso reanudado desde snapshot")
		return s, nil
	}

	if snap.Date != "" {
		// Archivar el día pendiente con los acumuladores tal como quedaron.
		s.currentDate = snap.Date
		s.dailyIncome = snap.DailyIncome
		s.dailySold = snap.DailySold

		s.mu.Lock()
		closed := s.archiveAndReset(snap.Date, today)
		if !closed {
			// La fecha ya encabezaba el historial: no se duplica el
			// resumen, pero igual se arranca hoy en cero.
			s.currentDate = today
			s.dailyIncome = decimal.Zero
			s.dailySold = 0
		}
		corrected := s.snapshotLocked()
		s.mu.Unlock()

		if closed {
			r.log.Info().Str("cerrado", snap.Date).Str("nuevo", today).Msg("día pendiente archivado al arrancar")
		}
		// En ambos sub-caminos hubo corrección; se re-persiste para que el
		// storage no vuelva a presentar la fecha vieja en el próximo arranque.
		if err := r.repo.Save(ctx, corrected); err != nil {
			r.log.Warn().Err(err).Msg("no se pudo persistir el snapshot corregido")
		}
	}

	return s, nil
}
