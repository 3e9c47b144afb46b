package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema mínimo de la tienda. initial_stock se crea explícitamente: el
// dashboard compara stock_quantity contra una fracción de este valor.
// sales no declara FK a products: la venta guarda snapshot de nombre y precio
// total, y debe sobrevivir al borrado del producto.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		price          NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category       TEXT NOT NULL DEFAULT '',
		stock_quantity BIGINT NOT NULL CHECK (stock_quantity >= 0),
		initial_stock  BIGINT NOT NULL DEFAULT 0,
		supplier       TEXT NOT NULL DEFAULT '',
		entry_date     DATE NOT NULL DEFAULT CURRENT_DATE,
		serial_number  TEXT NOT NULL DEFAULT '',
		image          BYTEA,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id           BIGSERIAL PRIMARY KEY,
		product_id   UUID NOT NULL,
		product_name TEXT NOT NULL,
		quantity     BIGINT NOT NULL CHECK (quantity > 0),
		total_price  NUMERIC(12,2) NOT NULL,
		sale_date    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen. Se ejecuta al arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w", err)
		}
	}
	return nil
}
