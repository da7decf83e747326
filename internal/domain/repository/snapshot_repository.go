package repository

import (
	"context"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia del snapshot del ledger sobre un
// almacenamiento clave-valor opaco.
//
// Contrato: Save sobrescribe el snapshot anterior completo; un fallo de
// escritura es best-effort (el caller lo reporta al logger, nunca revierte el
// estado en memoria). Load devuelve (nil, nil) si no hay snapshot previo o si
// el dato guardado está corrupto: un snapshot ilegible jamás es un error fatal.
type SnapshotRepository interface {
	Save(ctx context.Context, snap *entity.Snapshot) error
	Load(ctx context.Context) (*entity.Snapshot, error)
}
