package sales

import (
	"context"

	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta en el libro de ventas y
// el decremento de stock se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
