package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto.
// EntryDate en formato "2006-01-02"; vacío = hoy.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity int64           `json:"stock_quantity"`
	Supplier      string          `json:"supplier"`
	EntryDate     string          `json:"entry_date"`
	SerialNumber  string          `json:"serial_number"`
}

// UpdateProductRequest entrada para actualizar campos descriptivos y precio.
// El stock no se toca por aquí: lo mueven las ventas o el endpoint de stock.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	Supplier     *string          `json:"supplier"`
	SerialNumber *string          `json:"serial_number"`
}

// UpdateStockRequest entrada para fijar el stock absoluto de un producto.
type UpdateStockRequest struct {
	StockQuantity int64 `json:"stock_quantity"`
}

// ProductResponse salida de un producto. La imagen no viaja aquí; tiene su
// propio endpoint.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity int64           `json:"stock_quantity"`
	InitialStock  int64           `json:"initial_stock"`
	Supplier      string          `json:"supplier"`
	EntryDate     time.Time       `json:"entry_date"`
	SerialNumber  string          `json:"serial_number"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
