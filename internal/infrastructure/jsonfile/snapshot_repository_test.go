package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/internal/infrastructure/jsonfile"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

func snapshotDePrueba() *entity.Snapshot {
	return &entity.Snapshot{
		Date:        "2024-01-03",
		DailyIncome: decimal.NewFromFloat(39.98),
		DailySold:   2,
		History: []entity.DaySummary{
			{Date: "2024-01-02", Income: decimal.NewFromInt(120), Sold: 6, OrdersCount: 1, ItemsLeft: 80},
		},
		Items: []entity.Item{
			{ID: "i1", Name: "Camiseta Clásica", Price: decimal.NewFromFloat(19.99), Stock: 48, Sold: 10},
		},
		Orders: nil,
	}
}

func TestSnapshotRepo_IdaYVuelta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	repo := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())

	original := snapshotDePrueba()
	require.NoError(t, repo.Save(context.Background(), original))

	cargado, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cargado)

	assert.Equal(t, original.Date, cargado.Date)
	assert.True(t, original.DailyIncome.Equal(cargado.DailyIncome))
	assert.Equal(t, original.DailySold, cargado.DailySold)
	require.Len(t, cargado.History, 1)
	assert.Equal(t, "2024-01-02", cargado.History[0].Date)
	require.Len(t, cargado.Items, 1)
	assert.Equal(t, "Camiseta Clásica", cargado.Items[0].Name)
	assert.Equal(t, 48, cargado.Items[0].Stock)
}

func TestSnapshotRepo_ArchivoInexistenteDevuelveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-existe.json")
	repo := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepo_ContenidoCorruptoDevuelveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))
	repo := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())

	snap, err := repo.Load(context.Background())
	require.NoError(t, err, "un archivo ilegible nunca es fatal")
	assert.Nil(t, snap)
}

func TestSnapshotRepo_SnapshotCorruptoBajoLaClaveDevuelveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	doc := map[string]json.RawMessage{"clave_test": json.RawMessage(`"no soy un snapshot"`)}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	repo := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepo_ClaveAusenteDevuelveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	repo := jsonfile.NewSnapshotRepository(path, "otra_clave", logger.Nop())
	require.NoError(t, repo.Save(context.Background(), snapshotDePrueba()))

	lector := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())
	snap, err := lector.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

// TestSnapshotRepo_PreservaOtrasClaves un Save bajo una clave no pisa los
// snapshots guardados bajo otras claves del mismo documento.
func TestSnapshotRepo_PreservaOtrasClaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	ctx := context.Background()

	repoA := jsonfile.NewSnapshotRepository(path, "tienda_a", logger.Nop())
	repoB := jsonfile.NewSnapshotRepository(path, "tienda_b", logger.Nop())

	snapA := snapshotDePrueba()
	require.NoError(t, repoA.Save(ctx, snapA))

	snapB := snapshotDePrueba()
	snapB.Date = "2024-02-10"
	require.NoError(t, repoB.Save(ctx, snapB))

	cargadoA, err := repoA.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cargadoA)
	assert.Equal(t, "2024-01-03", cargadoA.Date)

	cargadoB, err := repoB.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cargadoB)
	assert.Equal(t, "2024-02-10", cargadoB.Date)
}

func TestSnapshotRepo_SaveCreaElDirectorio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "anidado", "ledger.json")
	repo := jsonfile.NewSnapshotRepository(path, "clave_test", logger.Nop())

	require.NoError(t, repo.Save(context.Background(), snapshotDePrueba()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
