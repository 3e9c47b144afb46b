package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsantos/estoque-api/internal/application/analytics"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// fakeReportRepo devuelve resultados fijos; registra los argumentos recibidos
// para verificar el umbral y el rango del día.
type fakeReportRepo struct {
	top     []repository.TopProductResult
	low     []repository.LowStockResult
	revenue decimal.Decimal
	units   int64

	gotLimit     int
	gotThreshold decimal.Decimal
	gotStart     time.Time
	gotEnd       time.Time

	failMetrics bool
}

func (r *fakeReportRepo) GetTopProducts(_ context.Context, limit int) ([]repository.TopProductResult, error) {
	r.gotLimit = limit
	return r.top, nil
}

func (r *fakeReportRepo) GetLowStock(_ context.Context, threshold decimal.Decimal) ([]repository.LowStockResult, error) {
	r.gotThreshold = threshold
	return r.low, nil
}

func (r *fakeReportRepo) GetSalesMetrics(_ context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	r.gotStart, r.gotEnd = start, end
	if r.failMetrics {
		return decimal.Zero, 0, errors.New("fallo simulado")
	}
	return r.revenue, r.units, nil
}

func TestDashboard_ResumenCompleto(t *testing.T) {
	repo := &fakeReportRepo{
		top: []repository.TopProductResult{
			{ProductName: "Café", UnitsSold: 120, Revenue: decimal.RequireFromString("1500.005")},
			{ProductName: "Azúcar", UnitsSold: 80, Revenue: decimal.RequireFromString("400")},
		},
		low: []repository.LowStockResult{
			{ProductID: "p1", ProductName: "Café", StockQuantity: 3, InitialStock: 40},
		},
		revenue: decimal.RequireFromString("250.509"),
		units:   17,
	}
	uc := analytics.NewDashboardUseCase(repo, 0.1)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(17), out.TodayUnits)
	assert.True(t, decimal.RequireFromString("250.51").Equal(out.TodayRevenue), "ingresos redondeados a 2 decimales")

	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "Café", out.TopProducts[0].ProductName)
	assert.True(t, decimal.RequireFromString("1500.01").Equal(out.TopProducts[0].Revenue))

	require.Len(t, out.LowStock, 1)
	assert.True(t, decimal.RequireFromString("7.5").Equal(out.LowStock[0].StockPct),
		"3/40 = 7.5%%, obtenido %s", out.LowStock[0].StockPct)

	assert.Equal(t, 5, repo.gotLimit, "el ranking del dashboard pide 5 productos")
	assert.True(t, decimal.RequireFromString("0.1").Equal(repo.gotThreshold))
}

func TestDashboard_RangoDelDia(t *testing.T) {
	repo := &fakeReportRepo{revenue: decimal.Zero}
	uc := analytics.NewDashboardUseCase(repo, 0.1)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), repo.gotStart.Year())
	assert.Equal(t, now.YearDay(), repo.gotStart.YearDay())
	assert.Equal(t, 0, repo.gotStart.Hour(), "el rango arranca a las 00:00")
	assert.True(t, repo.gotEnd.After(repo.gotStart))
	assert.Equal(t, now.YearDay(), repo.gotEnd.YearDay(), "el rango no cruza al día siguiente")
}

func TestDashboard_SinVentasNiStockBajo(t *testing.T) {
	repo := &fakeReportRepo{revenue: decimal.Zero}
	uc := analytics.NewDashboardUseCase(repo, 0.1)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, out.TodayRevenue.IsZero())
	assert.Zero(t, out.TodayUnits)
	assert.Empty(t, out.TopProducts)
	assert.Empty(t, out.LowStock)
}

func TestDashboard_StockInicialCeroNoDividePorCero(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: decimal.Zero,
		low: []repository.LowStockResult{
			{ProductID: "p1", ProductName: "Raro", StockQuantity: 0, InitialStock: 0},
		},
	}
	uc := analytics.NewDashboardUseCase(repo, 0.1)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.LowStock, 1)
	assert.True(t, out.LowStock[0].StockPct.IsZero(), "initial_stock 0 -> pct 0, sin división por cero")
}

func TestDashboard_ErrorDeUnaConsultaAbortaElResumen(t *testing.T) {
	repo := &fakeReportRepo{failMetrics: true}
	uc := analytics.NewDashboardUseCase(repo, 0.1)

	out, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
}
