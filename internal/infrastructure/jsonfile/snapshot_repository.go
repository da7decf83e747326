// Package jsonfile persiste el snapshot del ledger como un documento JSON en
// disco local: el modo mostrador, sin servicios externos. El archivo guarda un
// objeto {clave: snapshot} para respetar el contrato clave-valor del puerto.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/repository"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación de SnapshotRepository sobre un archivo JSON.
type SnapshotRepo struct {
	path string
	key  string
	log  *logger.Logger
}

// NewSnapshotRepository construye el adaptador de archivo local.
func NewSnapshotRepository(path, key string, log *logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{path: path, key: key, log: log}
}

// Save sobrescribe el snapshot bajo la clave del repo. Escritura atómica:
// archivo temporal en el mismo directorio y rename, para que una caída a
// mitad de escritura nunca deje un snapshot a medias.
func (r *SnapshotRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}

	doc, err := r.readDocument()
	if err != nil {
		// Documento ilegible: se reemplaza entero, igual que un snapshot corrupto.
		doc = map[string]json.RawMessage{}
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	doc[r.key] = raw

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "ledger-*.tmp")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}

// Load devuelve el último snapshot guardado, o (nil, nil) si el archivo no
// existe, no contiene la clave o el contenido no parsea. Un snapshot corrupto
// jamás es fatal: se registra y se arranca de cero.
func (r *SnapshotRepo) Load(_ context.Context) (*entity.Snapshot, error) {
	doc, err := r.readDocument()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		r.log.Warn().Err(err).Str("path", r.path).Msg("snapshot ilegible; se ignora")
		return nil, nil
	}
	raw, ok := doc[r.key]
	if !ok {
		return nil, nil
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		r.log.Warn().Err(err).Str("clave", r.key).Msg("snapshot corrupto; se ignora")
		return nil, nil
	}
	return &snap, nil
}

func (r *SnapshotRepo) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear documento: %w", err)
	}
	return doc, nil
}
