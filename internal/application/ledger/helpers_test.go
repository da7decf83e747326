package ledger_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: repositorio en memoria, reloj controlable y builders.
// ──────────────────────────────────────────────────────────────────────────────

// memRepo SnapshotRepository en memoria, con fallos inyectables.
type memRepo struct {
	mu       sync.Mutex
	snap     *entity.Snapshot
	saves    int
	failSave bool
	loadErr  error
	saveGate chan struct{} // si no es nil, Save espera aquí antes de escribir
}

func (r *memRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	r.mu.Lock()
	gate := r.saveGate
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return fmt.Errorf("almacenamiento no disponible")
	}
	r.snap = snap
	r.saves++
	return nil
}

func (r *memRepo) Load(_ context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.snap, nil
}

func (r *memRepo) saved() *entity.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// fakeClock reloj mutable y seguro para goroutines.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// día base de los tests: 2024-01-03, 10:00 hora local.
func baseTime() time.Time {
	return time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local)
}

// testItem un artículo con ID fijo para poder referenciarlo en los asserts.
func testItem(id string, price float64, stock, sold int) entity.Item {
	return entity.Item{
		ID:    id,
		Name:  "Artículo " + id,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
		Sold:  sold,
	}
}

// newTestStore arma un Store reconciliado con el seed dado y el reloj dado.
func newTestStore(t *testing.T, repo *memRepo, clock *fakeClock, items []entity.Item, orders []entity.Order) *ledger.Store {
	t.Helper()
	rec := ledger.NewReconciler(repo, logger.Nop(),
		ledger.WithClock(clock.Now),
		ledger.WithSeed(func() ([]entity.Item, []entity.Order) { return items, orders }),
	)
	store, err := rec.Run(context.Background())
	require.NoError(t, err)
	return store
}
