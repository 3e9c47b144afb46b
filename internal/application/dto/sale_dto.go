package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// SaleResponse salida de una venta registrada (confirmación).
type SaleResponse struct {
	ID          int64           `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SoldAt      time.Time       `json:"sold_at"`
}

// ListSalesRequest filtros del listado de ventas. From/To en RFC 3339; vacíos = sin filtro.
type ListSalesRequest struct {
	ProductID string `query:"product_id"`
	From      string `query:"from"`
	To        string `query:"to"`
	PageRequest
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
