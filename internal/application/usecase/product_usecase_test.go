package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/application/usecase"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
)

// memProductRepo implementación en memoria del puerto de productos.
type memProductRepo struct {
	products map[string]*entity.Product
	images   map[string][]byte
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		products: make(map[string]*entity.Product),
		images:   make(map[string][]byte),
	}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	delete(r.images, id)
	return nil
}

func (r *memProductRepo) GetImage(id string) ([]byte, error) { return r.images[id], nil }

func (r *memProductRepo) SetImage(id string, image []byte) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	r.images[id] = image
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AltaExitosa(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:          "Café Molido 500g",
		Price:         decimal.RequireFromString("12.50"),
		StockQuantity: 40,
		Category:      "Alimentos",
		EntryDate:     "2025-03-01",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el ID se genera en el alta")
	assert.Equal(t, int64(40), out.StockQuantity)
	assert.Equal(t, int64(40), out.InitialStock, "el stock inicial queda fijado al stock de alta")
	assert.Equal(t, "2025-03-01", out.EntryDate.Format("2006-01-02"))
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	cases := map[string]dto.CreateProductRequest{
		"nombre vacío":     {Name: "", Price: decimal.RequireFromString("1")},
		"precio negativo":  {Name: "X", Price: decimal.RequireFromString("-1")},
		"stock negativo":   {Name: "X", Price: decimal.RequireFromString("1"), StockQuantity: -5},
		"fecha mal armada": {Name: "X", Price: decimal.RequireFromString("1"), EntryDate: "03/01/2025"},
	}
	for name, in := range cases {
		out, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
		assert.Nil(t, out, name)
	}
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Café", Price: decimal.RequireFromString("10.00"), StockQuantity: 7,
	})
	require.NoError(t, err)

	newName := "Café Premium"
	newPrice := decimal.RequireFromString("15.00")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Café Premium", out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	assert.Equal(t, int64(7), out.StockQuantity, "Update no debe mover el stock")
	assert.Equal(t, int64(7), out.InitialStock, "Update no debe mover el stock inicial")
}

func TestProductUpdate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	name := "X"
	out, err := uc.Update("nope", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente devuelve (nil, nil)")
}

func TestProductUpdateStock_FijaValorAbsoluto(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Café", Price: decimal.RequireFromString("10.00"), StockQuantity: 7,
	})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStock(created.ID, 25))
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), got.StockQuantity, "es un set absoluto, no un delta")
	assert.Equal(t, int64(7), got.InitialStock, "la reposición no cambia el stock inicial")
}

func TestProductUpdateStock_Errores(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	assert.ErrorIs(t, uc.UpdateStock("cualquiera", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateStock("nope", 5), domain.ErrNotFound)
}

func TestProductDelete_EsIdempotente(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Café", Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	require.NoError(t, uc.Delete(created.ID), "borrar dos veces no es error")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductImage_RoundTrip(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Café", Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.SetImage(created.ID, nil), domain.ErrInvalidInput, "imagen vacía se rechaza")

	blob := []byte{0x89, 0x50, 0x4e, 0x47}
	require.NoError(t, uc.SetImage(created.ID, blob))

	got, err := uc.GetImage(created.ID)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}
