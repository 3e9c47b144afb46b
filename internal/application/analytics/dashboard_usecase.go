// Package analytics contiene los casos de uso de lectura para el dashboard
// de la tienda: más vendidos, stock bajo y ventas del día.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el ranking del dashboard

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: ReportRepository (consultas read-only). El umbral de stock
// bajo es configurable; compara el stock actual contra el stock inicial
// registrado al dar de alta el producto.
type DashboardUseCase struct {
	reportRepo   repository.ReportRepository
	lowThreshold decimal.Decimal
}

// NewDashboardUseCase construye el caso de uso. lowThreshold es la fracción
// del stock inicial bajo la cual un producto se considera con stock bajo.
func NewDashboardUseCase(reportRepo repository.ReportRepository, lowThreshold float64) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo:   reportRepo,
		lowThreshold: decimal.NewFromFloat(lowThreshold),
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetTopProducts(5)      → TopProducts
//  2. GetLowStock(threshold) → LowStock
//  3. GetSalesMetrics(hoy)   → TodayRevenue + TodayUnits
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	type lowResult struct {
		rows []repository.LowStockResult
		err  error
	}
	type metricsResult struct {
		revenue decimal.Decimal
		units   int64
		err     error
	}

	topCh := make(chan topResult, 1)
	lowCh := make(chan lowResult, 1)
	todayCh := make(chan metricsResult, 1)

	go func() {
		rows, err := uc.reportRepo.GetTopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetLowStock(ctx, uc.lowThreshold)
		lowCh <- lowResult{rows, err}
	}()
	go func() {
		revenue, units, err := uc.reportRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{revenue, units, err}
	}()

	top := <-topCh
	low := <-lowCh
	today := <-todayCh

	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}

	hundred := decimal.NewFromInt(100)

	topDTOs := make([]dto.TopProductDTO, 0, len(top.rows))
	for _, r := range top.rows {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue.Round(2),
		})
	}

	lowDTOs := make([]dto.LowStockDTO, 0, len(low.rows))
	for _, r := range low.rows {
		var pct decimal.Decimal
		if r.InitialStock > 0 {
			pct = decimal.NewFromInt(r.StockQuantity).
				Div(decimal.NewFromInt(r.InitialStock)).
				Mul(hundred).Round(2)
		}
		lowDTOs = append(lowDTOs, dto.LowStockDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			StockQuantity: r.StockQuantity,
			InitialStock:  r.InitialStock,
			StockPct:      pct,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue: today.revenue.Round(2),
		TodayUnits:   today.units,
		TopProducts:  topDTOs,
		LowStock:     lowDTOs,
	}, nil
}
