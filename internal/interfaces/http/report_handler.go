package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/application/reports"
	"github.com/wsantos/estoque-api/internal/domain"
)

// ReportHandler expone los reportes descargables.
type ReportHandler struct {
	salesReportUC *reports.SalesReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(salesReportUC *reports.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{salesReportUC: salesReportUC}
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Description  Genera el PDF con las ventas del período y lo devuelve como descarga.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	in := dto.ListSalesRequest{
		ProductID: c.Query("product_id"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
	pdf, err := h.salesReportUC.Generate(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas RFC3339"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "ventas_" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
