package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

// RecordSaleUseCase registra una venta de forma transaccional: bloquea la fila
// del producto (SELECT FOR UPDATE), verifica stock, inserta la venta y
// decrementa el stock, con Commit o Rollback.
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

// RecordSale registra la venta de `quantity` unidades del producto indicado.
//
// Dentro de la transacción:
//  1. Lee el producto con bloqueo de fila; ausente -> ErrProductNotFound.
//  2. quantity > stock actual -> ErrInsufficientStock (el stock nunca queda negativo).
//  3. Total = quantity * precio vigente; el precio queda congelado en la venta.
//  4. Inserta la venta con snapshot del nombre y timestamp actual.
//  5. Fija el stock en stock - quantity.
//
// O se confirman el alta en ventas y el decremento juntos, o ninguno.
// No es idempotente: cada llamada es una venta nueva.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto para que dos ventas concurrentes no
		// validen contra el mismo stock viejo
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.Quantity > product.StockQuantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		total := product.Price.Mul(decimal.NewFromInt(in.Quantity))

		sale = &entity.Sale{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			TotalPrice:  total,
			SoldAt:      now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return productRepo.UpdateStock(product.ID, product.StockQuantity-in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		TotalPrice:  s.TotalPrice,
		SoldAt:      s.SoldAt,
	}
}
