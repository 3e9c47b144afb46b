package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una entrada inmutable del libro de ventas.
// ProductName y TotalPrice son snapshots al momento de la venta: renombrar o
// borrar el producto después no los altera. El ID lo asigna la base de datos
// en orden de inserción (BIGSERIAL), que coincide con el orden cronológico.
type Sale struct {
	ID          int64
	ProductID   string // referencia débil: el producto puede dejar de existir
	ProductName string
	Quantity    int64
	TotalPrice  decimal.Decimal // Quantity * precio unitario al momento de la venta
	SoldAt      time.Time
}
