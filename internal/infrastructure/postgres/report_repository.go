package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y los reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas.
// Agrupa por nombre snapshot: ventas viejas cuentan bajo el nombre que tenían.
func (r *ReportRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    product_name,
	    SUM(quantity)    AS units_sold,
	    SUM(total_price) AS revenue
	FROM sales
	GROUP BY product_name
	ORDER BY units_sold DESC, product_name
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetLowStock devuelve los productos con stock_quantity < threshold * initial_stock.
// initial_stock = 0 nunca se reporta (producto dado de alta sin stock).
func (r *ReportRepo) GetLowStock(ctx context.Context, threshold decimal.Decimal) ([]repository.LowStockResult, error) {
	const query = `
	SELECT id, name, stock_quantity, initial_stock
	FROM products
	WHERE initial_stock > 0
	  AND stock_quantity < $1 * initial_stock
	ORDER BY stock_quantity::NUMERIC / initial_stock, name`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockResult
	for rows.Next() {
		var row repository.LowStockResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.StockQuantity, &row.InitialStock); err != nil {
			return nil, fmt.Errorf("reports.GetLowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesMetrics devuelve ingresos y unidades vendidas del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *ReportRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (revenue decimal.Decimal, units int64, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_price), 0) AS revenue,
	    COALESCE(SUM(quantity),    0) AS units
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, start, end).Scan(&revenue, &units)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("reports.GetSalesMetrics: %w", err)
	}
	return revenue, units, nil
}
