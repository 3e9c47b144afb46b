package sales

import (
	"time"

	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// ListSalesUseCase consulta de solo lectura sobre el libro de ventas.
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas que cumplen el filtro, paginadas.
// From/To en RFC 3339; un valor mal formado retorna ErrInvalidInput.
func (uc *ListSalesUseCase) List(in dto.ListSalesRequest) (*dto.SaleListResponse, error) {
	in.DefaultPage()

	filter := repository.SaleFilter{ProductID: in.ProductID}
	if in.From != "" {
		t, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = t
	}
	if in.To != "" {
		t, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = t
	}

	list, err := uc.saleRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}
