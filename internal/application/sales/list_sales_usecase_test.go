package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/application/sales"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
)

func seedSale(store *fakeStore, productID, name string, soldAt time.Time) {
	store.sales = append(store.sales, &entity.Sale{
		ID:          store.nextID,
		ProductID:   productID,
		ProductName: name,
		Quantity:    1,
		TotalPrice:  decimal.RequireFromString("5.00"),
		SoldAt:      soldAt,
	})
	store.nextID++
}

// El listado sin filtros devuelve el libro completo en orden cronológico.
func TestListSales_SinFiltros(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	seedSale(store, "p1", "Café", base)
	seedSale(store, "p2", "Azúcar", base.Add(time.Hour))
	seedSale(store, "p1", "Café", base.Add(2*time.Hour))

	uc := sales.NewListSalesUseCase(&fakeSaleRepo{store: store})
	out, err := uc.List(dto.ListSalesRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, int64(3), out.Items[2].ID)
	assert.Equal(t, 20, out.Page.Limit, "sin limit explícito aplica el default")
}

// Filtro por producto: solo ventas de ese product_id.
func TestListSales_FiltroPorProducto(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	seedSale(store, "p1", "Café", base)
	seedSale(store, "p2", "Azúcar", base)
	seedSale(store, "p1", "Café", base)

	uc := sales.NewListSalesUseCase(&fakeSaleRepo{store: store})
	out, err := uc.List(dto.ListSalesRequest{ProductID: "p1"})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	for _, it := range out.Items {
		assert.Equal(t, "p1", it.ProductID)
	}
}

// Filtro por rango de fechas en RFC 3339.
func TestListSales_FiltroPorFechas(t *testing.T) {
	store := newFakeStore()
	seedSale(store, "p1", "Café", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	seedSale(store, "p1", "Café", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC))
	seedSale(store, "p1", "Café", time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC))

	uc := sales.NewListSalesUseCase(&fakeSaleRepo{store: store})
	out, err := uc.List(dto.ListSalesRequest{
		From: "2025-03-02T00:00:00Z",
		To:   "2025-03-08T00:00:00Z",
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].ID)
}

// Fecha mal formada -> ErrInvalidInput.
func TestListSales_FechaInvalida(t *testing.T) {
	uc := sales.NewListSalesUseCase(&fakeSaleRepo{store: newFakeStore()})

	_, err := uc.List(dto.ListSalesRequest{From: "01/03/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(dto.ListSalesRequest{To: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Paginación: limit y offset recortan el resultado.
func TestListSales_Paginacion(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedSale(store, "p1", "Café", base.Add(time.Duration(i)*time.Hour))
	}

	uc := sales.NewListSalesUseCase(&fakeSaleRepo{store: store})
	out, err := uc.List(dto.ListSalesRequest{PageRequest: dto.PageRequest{Limit: 2, Offset: 2}})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(3), out.Items[0].ID)
	assert.Equal(t, int64(4), out.Items[1].ID)
}
