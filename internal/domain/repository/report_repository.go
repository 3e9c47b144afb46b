package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo de la consulta de más vendidos.
// Agrupado por nombre snapshot: si un producto se renombró, sus ventas
// anteriores cuentan bajo el nombre viejo.
type TopProductResult struct {
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// LowStockResult producto cuyo stock actual cayó bajo el umbral del stock inicial.
type LowStockResult struct {
	ProductID     string
	ProductName   string
	StockQuantity int64
	InitialStock  int64
}

// ReportRepository define las consultas de lectura para el dashboard y los
// reportes. Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetTopProducts devuelve los `limit` productos con más unidades vendidas.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetLowStock devuelve los productos con stock_quantity < threshold * initial_stock.
	// Los productos con initial_stock = 0 nunca se reportan.
	GetLowStock(ctx context.Context, threshold decimal.Decimal) ([]LowStockResult, error)

	// GetSalesMetrics devuelve ingresos y unidades vendidas en el rango de fechas.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesMetrics(ctx context.Context, start, end time.Time) (revenue decimal.Decimal, units int64, err error)
}
