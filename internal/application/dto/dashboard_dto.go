package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Reúne los dos paneles del dashboard (más vendidos y stock bajo) más las
// métricas del día.
type DashboardSummaryDTO struct {
	// Ventas del día actual (00:00 – 23:59)
	TodayRevenue decimal.Decimal `json:"today_revenue"`
	TodayUnits   int64           `json:"today_units"`

	// Productos más vendidos (histórico, por unidades)
	TopProducts []TopProductDTO `json:"top_products"`

	// Productos por debajo del umbral de stock bajo
	LowStock []LowStockDTO `json:"low_stock"`
}

// TopProductDTO un producto en el ranking de más vendidos.
type TopProductDTO struct {
	ProductName string          `json:"product_name"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// LowStockDTO un producto con stock bajo respecto a su stock inicial.
type LowStockDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	StockQuantity int64           `json:"stock_quantity"`
	InitialStock  int64           `json:"initial_stock"`
	StockPct      decimal.Decimal `json:"stock_pct"` // stock actual / inicial * 100
}
