package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/application/reports"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	sales     []*entity.Sale
	gotFilter repository.SaleFilter
}

func (r *fakeSaleRepo) Create(*entity.Sale) error { return nil }

func (r *fakeSaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	r.gotFilter = filter
	return r.sales, nil
}

// captureGenerator guarda los datos recibidos y devuelve bytes fijos.
type captureGenerator struct {
	got *reports.SalesReportData
}

func (g *captureGenerator) GenerateSalesReport(_ context.Context, data *reports.SalesReportData) ([]byte, error) {
	g.got = data
	return []byte("%PDF-fake"), nil
}

func TestSalesReport_TotalesYMetadatos(t *testing.T) {
	soldAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: 1, ProductID: "p1", ProductName: "Café", Quantity: 2, TotalPrice: decimal.RequireFromString("25.00"), SoldAt: soldAt},
		{ID: 2, ProductID: "p2", ProductName: "Azúcar", Quantity: 3, TotalPrice: decimal.RequireFromString("7.506"), SoldAt: soldAt},
	}}
	gen := &captureGenerator{}
	uc := reports.NewSalesReportUseCase(repo, gen, "Tienda Central")

	out, err := uc.Generate(context.Background(), dto.ListSalesRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)

	require.NotNil(t, gen.got)
	assert.Equal(t, "Tienda Central", gen.got.StoreName)
	assert.Equal(t, int64(5), gen.got.TotalUnits)
	assert.True(t, decimal.RequireFromString("32.51").Equal(gen.got.TotalRevenue),
		"total redondeado a 2 decimales, obtenido %s", gen.got.TotalRevenue)
	assert.Equal(t, "histórico completo", gen.got.PeriodLabel)
	require.Len(t, gen.got.Sales, 2)
}

func TestSalesReport_FiltroYEtiquetaDePeriodo(t *testing.T) {
	repo := &fakeSaleRepo{}
	gen := &captureGenerator{}
	uc := reports.NewSalesReportUseCase(repo, gen, "Tienda Central")

	_, err := uc.Generate(context.Background(), dto.ListSalesRequest{
		ProductID: "p1",
		From:      "2025-03-01T00:00:00Z",
		To:        "2025-03-31T23:59:59Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", repo.gotFilter.ProductID)
	assert.False(t, repo.gotFilter.From.IsZero())
	assert.False(t, repo.gotFilter.To.IsZero())
	assert.Equal(t, "01/03/2025 – 31/03/2025", gen.got.PeriodLabel)
}

func TestSalesReport_FechaInvalida(t *testing.T) {
	uc := reports.NewSalesReportUseCase(&fakeSaleRepo{}, &captureGenerator{}, "Tienda Central")

	_, err := uc.Generate(context.Background(), dto.ListSalesRequest{From: "marzo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesReport_SinVentas(t *testing.T) {
	gen := &captureGenerator{}
	uc := reports.NewSalesReportUseCase(&fakeSaleRepo{}, gen, "Tienda Central")

	out, err := uc.Generate(context.Background(), dto.ListSalesRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, out, "un período sin ventas igual produce reporte")
	assert.Zero(t, gen.got.TotalUnits)
	assert.True(t, gen.got.TotalRevenue.IsZero())
}
