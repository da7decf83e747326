// Package report genera el reporte imprimible de cierre de día a partir del
// historial archivado del ledger.
package report

import (
	"context"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/entity"
)

// DayClosePDFGenerator puerto del generador PDF (implementado en infraestructura).
type DayClosePDFGenerator interface {
	GenerateDayClosePDF(ctx context.Context, summary entity.DaySummary, shopName string) ([]byte, error)
}

// PDFUseCase produce el PDF de cierre para un día ya archivado.
type PDFUseCase struct {
	store     *ledger.Store
	generator DayClosePDFGenerator
	shopName  string
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(store *ledger.Store, generator DayClosePDFGenerator, shopName string) *PDFUseCase {
	return &PDFUseCase{store: store, generator: generator, shopName: shopName}
}

// GenerateForDate busca el resumen archivado del día y genera su PDF.
// Devuelve ErrNotFound si ese día no está en el historial (incluido el día en
// curso: solo se imprimen días cerrados).
func (uc *PDFUseCase) GenerateForDate(ctx context.Context, date string) ([]byte, error) {
	summary, ok := uc.store.Summary(date)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateDayClosePDF(ctx, summary, uc.shopName)
}
