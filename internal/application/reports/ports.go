package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/domain/entity"
)

// SalesReportData datos ya resueltos para renderizar el reporte de ventas.
type SalesReportData struct {
	StoreName    string
	GeneratedAt  time.Time
	PeriodLabel  string // ej: "01/08/2026 – 31/08/2026" o "histórico completo"
	Sales        []*entity.Sale
	TotalUnits   int64
	TotalRevenue decimal.Decimal
}

// SalesReportGenerator puerto de renderizado del reporte (PDF u otro formato).
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, data *SalesReportData) ([]byte, error)
}
