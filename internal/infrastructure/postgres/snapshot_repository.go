package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/repository"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación de SnapshotRepository sobre PostgreSQL: una
// tabla clave-valor con el snapshot entero como jsonb, una fila por clave.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	key  string
	log  *logger.Logger
}

// NewSnapshotRepository construye el adaptador de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool, key string, log *logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, key: key, log: log}
}

// EnsureSchema crea la tabla de snapshots si no existe. Se invoca una vez al
// arrancar, antes de la reconciliación.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS pos_snapshots (
			key        text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla pos_snapshots: %w", err)
	}
	return nil
}

// Save sobrescribe el snapshot bajo la clave del repo (upsert).
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	query := `
		INSERT INTO pos_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, r.key, data); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// Load devuelve el último snapshot guardado, o (nil, nil) si no hay fila para
// la clave o el jsonb guardado no parsea. Dato corrupto nunca es fatal.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	query := `SELECT data FROM pos_snapshots WHERE key = $1`
	var data []byte
	err := r.pool.QueryRow(ctx, query, r.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		r.log.Warn().Err(err).Str("clave", r.key).Msg("snapshot corrupto; se ignora")
		return nil, nil
	}
	return &snap, nil
}
