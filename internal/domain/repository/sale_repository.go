package repository

import (
	"time"

	"github.com/wsantos/estoque-api/internal/domain/entity"
)

// SaleFilter filtros opcionales para listar ventas. Los campos en cero se ignoran.
type SaleFilter struct {
	ProductID string
	From      time.Time
	To        time.Time
}

// SaleRepository define el puerto del libro de ventas. Es append-only: el
// puerto no expone update ni delete a propósito.
type SaleRepository interface {
	// Create inserta la venta y asigna sale.ID (orden de inserción).
	Create(sale *entity.Sale) error
	List(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
}
