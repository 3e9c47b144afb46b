package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock solo se mueve
// por ventas o por UpdateStock; Update no lo toca.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto nuevo. Precio o stock negativos -> ErrInvalidInput.
// InitialStock queda fijado al stock de alta (base del umbral de stock bajo).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	entryDate := time.Now()
	if in.EntryDate != "" {
		t, err := time.Parse("2006-01-02", in.EntryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entryDate = t
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		InitialStock:  in.StockQuantity,
		Supplier:      in.Supplier,
		EntryDate:     entryDate,
		SerialNumber:  in.SerialNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos descriptivos y precio. No permite tocar el stock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.SerialNumber != nil {
		product.SerialNumber = *in.SerialNumber
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateStock fija el stock absoluto de un producto (reposición manual).
// Cantidad negativa -> ErrInvalidInput; id ausente -> ErrNotFound.
func (uc *ProductUseCase) UpdateStock(id string, quantity int64) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStock(id, quantity)
}

// List lista productos paginados en orden de alta.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Las ventas históricas lo sobreviven (referencia débil).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetImage devuelve el blob de imagen del producto (nil si no tiene).
func (uc *ProductUseCase) GetImage(id string) ([]byte, error) {
	return uc.repo.GetImage(id)
}

// SetImage guarda el blob de imagen del producto.
func (uc *ProductUseCase) SetImage(id string, image []byte) error {
	if len(image) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetImage(id, image)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		InitialStock:  p.InitialStock,
		Supplier:      p.Supplier,
		EntryDate:     p.EntryDate,
		SerialNumber:  p.SerialNumber,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
