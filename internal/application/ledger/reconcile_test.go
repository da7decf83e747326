package ledger_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación al arranque: reanudar el día, archivar el día pendiente o
// arrancar de cero con seed.
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_SinSnapshotUsaSeed(t *testing.T) {
	repo := &memRepo{}
	clock := newFakeClock(baseTime())

	rec := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now))
	store, err := rec.Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.Len(t, view.Items, 3, "catálogo seed de la tienda")
	assert.Len(t, view.Orders, 1, "pedido pendiente de Alice")
	assert.Empty(t, view.History)
	assert.True(t, view.DailyIncome.IsZero())
	assert.Equal(t, 0, view.DailySold)
}

// TestReconcile_MismoDiaReanuda con snapshot del mismo día el estado vuelve
// exactamente como quedó persistido (round-trip).
func TestReconcile_MismoDiaReanuda(t *testing.T) {
	hist := []entity.DaySummary{{Date: "2024-01-02", Income: decimal.NewFromInt(120), Sold: 9, OrdersCount: 1, ItemsLeft: 40}}
	repo := &memRepo{snap: &entity.Snapshot{
		Date:        "2024-01-03",
		DailyIncome: decimal.NewFromFloat(59.97),
		DailySold:   3,
		History:     hist,
		Items:       []entity.Item{testItem("i1", 19.99, 47, 11)},
		Orders:      []entity.Order{{ID: "o1", Customer: "Alice", Lines: []entity.OrderLine{{ItemID: "i1", Qty: 2}}, Total: decimal.NewFromFloat(39.98), CreatedAt: baseTime()}},
	}}
	clock := newFakeClock(baseTime())

	store, err := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now)).Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.True(t, decimal.NewFromFloat(59.97).Equal(view.DailyIncome))
	assert.Equal(t, 3, view.DailySold)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 47, view.Items[0].Stock)
	require.Len(t, view.Orders, 1)
	assert.Equal(t, hist, view.History)
	assert.Equal(t, 0, repo.saves, "reanudar tal cual no re-persiste nada")
}

// TestReconcile_DiaPendienteArchivaUnoSolo la app estuvo cerrada del
// 2024-01-01 al 2024-01-03: se archiva UN resumen para el 01 (la última fecha
// conocida) y ningún registro para el 02. Los días intermedios se pierden a
// propósito; cambiarlo es una decisión de producto, no de implementación.
func TestReconcile_DiaPendienteArchivaUnoSolo(t *testing.T) {
	creadoEl1 := time.Date(2024, 1, 1, 16, 0, 0, 0, time.Local)
	repo := &memRepo{snap: &entity.Snapshot{
		Date:        "2024-01-01",
		DailyIncome: decimal.NewFromInt(200),
		DailySold:   12,
		History:     []entity.DaySummary{{Date: "2023-12-31", Income: decimal.NewFromInt(80), Sold: 4, OrdersCount: 0, ItemsLeft: 60}},
		Items:       []entity.Item{testItem("i1", 10, 30, 12), testItem("i2", 20, 15, 0)},
		Orders: []entity.Order{
			{ID: "o1", Customer: "Alice", Lines: []entity.OrderLine{{ItemID: "i1", Qty: 2}}, Total: decimal.NewFromInt(20), CreatedAt: creadoEl1},
			{ID: "o2", Customer: "Bruno", Lines: []entity.OrderLine{{ItemID: "i2", Qty: 1}}, Total: decimal.NewFromInt(20), CreatedAt: time.Date(2023, 12, 30, 9, 0, 0, 0, time.Local)},
		},
	}}
	clock := newFakeClock(baseTime()) // hoy es 2024-01-03

	store, err := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now)).Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.True(t, view.DailyIncome.IsZero(), "acumuladores en cero para el día nuevo")
	assert.Equal(t, 0, view.DailySold)

	require.Len(t, view.History, 2, "el resumen nuevo se antepone al historial persistido")
	cierre := view.History[0]
	assert.Equal(t, "2024-01-01", cierre.Date)
	assert.True(t, decimal.NewFromInt(200).Equal(cierre.Income))
	assert.Equal(t, 12, cierre.Sold)
	assert.Equal(t, 1, cierre.OrdersCount, "solo el pedido creado el 01")
	assert.Equal(t, 45, cierre.ItemsLeft, "suma del stock al cierre: 30 + 15")
	assert.Equal(t, "2023-12-31", view.History[1].Date)

	for _, d := range view.History {
		assert.NotEqual(t, "2024-01-02", d.Date, "los días intermedios no generan registro")
	}

	// Los items y pedidos se conservan tal cual.
	assert.Len(t, view.Items, 2)
	assert.Len(t, view.Orders, 2)

	// La corrección se re-persiste de inmediato.
	snap := repo.saved()
	require.NotNil(t, snap)
	assert.Equal(t, "2024-01-03", snap.Date)
	require.Len(t, snap.History, 2)
	assert.Equal(t, "2024-01-01", snap.History[0].Date)
}

// TestReconcile_FechaVaciaConservaDatos snapshot con fecha vacía (estado
// guardado por una versión vieja): se conservan items, pedidos e historial y
// se arranca hoy en cero, sin archivar nada.
func TestReconcile_FechaVaciaConservaDatos(t *testing.T) {
	repo := &memRepo{snap: &entity.Snapshot{
		Date:  "",
		Items: []entity.Item{testItem("i1", 10, 5, 0)},
	}}
	clock := newFakeClock(baseTime())

	store, err := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now)).Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.Len(t, view.Items, 1)
	assert.Empty(t, view.History)
	assert.True(t, view.DailyIncome.IsZero())
}

// TestReconcile_ErrorDeLecturaArrancaDeCero un error del almacenamiento al
// leer degrada a "sin estado previo": seed y a trabajar, nunca es fatal.
func TestReconcile_ErrorDeLecturaArrancaDeCero(t *testing.T) {
	repo := &memRepo{loadErr: fmt.Errorf("disco no disponible")}
	clock := newFakeClock(baseTime())

	store, err := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now)).Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.Len(t, view.Items, 3)
}

// TestReconcile_FechaYaArchivadaNoDuplica si el snapshot quedó con una fecha
// que ya encabeza el historial (p. ej. un guardado a medias durante un cierre
// anterior), no se duplica el resumen pero el día igual arranca en cero.
func TestReconcile_FechaYaArchivadaNoDuplica(t *testing.T) {
	repo := &memRepo{snap: &entity.Snapshot{
		Date:        "2024-01-01",
		DailyIncome: decimal.NewFromInt(200),
		DailySold:   12,
		History:     []entity.DaySummary{{Date: "2024-01-01", Income: decimal.NewFromInt(200), Sold: 12, OrdersCount: 0, ItemsLeft: 45}},
		Items:       []entity.Item{testItem("i1", 10, 45, 12)},
	}}
	clock := newFakeClock(baseTime())

	store, err := ledger.NewReconciler(repo, logger.Nop(), ledger.WithClock(clock.Now)).Run(context.Background())
	require.NoError(t, err)

	view := store.View()
	assert.Equal(t, "2024-01-03", view.CurrentDate)
	assert.True(t, view.DailyIncome.IsZero())
	assert.Equal(t, 0, view.DailySold)
	require.Len(t, view.History, 1, "sin resumen duplicado para el 01")

	// La corrección también se persiste: el storage no debe volver a
	// presentar la fecha vieja en el próximo arranque.
	snap := repo.saved()
	require.NotNil(t, snap)
	assert.Equal(t, "2024-01-03", snap.Date)
	assert.True(t, snap.DailyIncome.IsZero())
	assert.Equal(t, 0, snap.DailySold)
	require.Len(t, snap.History, 1)
}
