package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// StockQuantity solo lo mutan el registro de venta (decremento) y UpdateStock;
// InitialStock se fija al stock de alta y sirve de base para el umbral de
// stock bajo del dashboard.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta unitario, nunca negativo
	Category      string
	StockQuantity int64 // invariante: >= 0 en todo momento
	InitialStock  int64
	Supplier      string
	EntryDate     time.Time
	SerialNumber  string
	Image         []byte // blob opaco, puede ser nil
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
