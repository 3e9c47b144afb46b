package repository

import "github.com/wsantos/estoque-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; lo usa el registro de venta.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock absoluto. Retorna domain.ErrNotFound si el id no existe.
	UpdateStock(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	GetImage(id string) ([]byte, error)
	SetImage(id string, image []byte) error
}
