package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/dto"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/report"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
)

// HistoryHandler reporte de cierre de días archivados (protegido).
type HistoryHandler struct {
	pdfUC *report.PDFUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(pdfUC *report.PDFUseCase) *HistoryHandler {
	return &HistoryHandler{pdfUC: pdfUC}
}

// GetDayClosePDF godoc
// @Summary      PDF de cierre de un día archivado
// @Description  Solo días ya cerrados; el día en curso todavía no tiene resumen.
// @Tags         history
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  path  string  true  "Día calendario (YYYY-MM-DD)"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/history/{date}/pdf [get]
func (h *HistoryHandler) GetDayClosePDF(c *fiber.Ctx) error {
	date := c.Params("date")
	data, err := h.pdfUC.GenerateForDate(c.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ese día no está archivado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-`+date+`.pdf"`)
	return c.Send(data)
}
