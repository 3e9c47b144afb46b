package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// máximo de filas que entran en un reporte; suficiente para el volumen de una
// tienda (miles de ventas por mes como techo)
const reportMaxRows = 1000

// SalesReportUseCase arma el reporte de ventas del período y delega el
// renderizado en el generador.
type SalesReportUseCase struct {
	saleRepo  repository.SaleRepository
	generator SalesReportGenerator
	storeName string
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(saleRepo repository.SaleRepository, generator SalesReportGenerator, storeName string) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo, generator: generator, storeName: storeName}
}

// Generate produce los bytes del reporte para el filtro indicado.
func (uc *SalesReportUseCase) Generate(ctx context.Context, in dto.ListSalesRequest) ([]byte, error) {
	filter := repository.SaleFilter{ProductID: in.ProductID}
	if in.From != "" {
		t, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = t
	}
	if in.To != "" {
		t, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = t
	}

	sales, err := uc.saleRepo.List(filter, reportMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}

	data := &SalesReportData{
		StoreName:   uc.storeName,
		GeneratedAt: time.Now(),
		PeriodLabel: periodLabel(filter.From, filter.To),
	}
	data.Sales = sales
	total := decimal.Zero
	var units int64
	for _, s := range sales {
		total = total.Add(s.TotalPrice)
		units += s.Quantity
	}
	data.TotalUnits = units
	data.TotalRevenue = total.Round(2)

	return uc.generator.GenerateSalesReport(ctx, data)
}

func periodLabel(from, to time.Time) string {
	const layout = "02/01/2006"
	switch {
	case from.IsZero() && to.IsZero():
		return "histórico completo"
	case to.IsZero():
		return "desde " + from.Format(layout)
	case from.IsZero():
		return "hasta " + to.Format(layout)
	default:
		return from.Format(layout) + " – " + to.Format(layout)
	}
}
