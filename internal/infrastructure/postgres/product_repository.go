package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
	"github.com/wsantos/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas sin la imagen: el blob solo viaja por GetImage/SetImage.
const productColumns = `id, name, description, price, category, stock_quantity, initial_stock, supplier, entry_date, serial_number, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, stock_quantity, initial_stock, supplier, entry_date, serial_number, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Category,
		product.StockQuantity, product.InitialStock, product.Supplier, product.EntryDate,
		product.SerialNumber, product.Image, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usarlo solo dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.StockQuantity, &p.InitialStock, &p.Supplier, &p.EntryDate,
		&p.SerialNumber, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza campos descriptivos y precio. No toca stock_quantity ni
// initial_stock (se mueven vía ventas o UpdateStock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, category = $5, supplier = $6, serial_number = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.Supplier, product.SerialNumber, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock absoluto del producto.
func (r *ProductRepo) UpdateStock(id string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos en orden de alta, con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.StockQuantity, &p.InitialStock, &p.Supplier, &p.EntryDate,
			&p.SerialNumber, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Las ventas no se tocan (referencia débil).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// GetImage devuelve el blob de imagen. (nil, nil) si el producto no existe o no tiene imagen.
func (r *ProductRepo) GetImage(id string) ([]byte, error) {
	var image []byte
	err := r.q.QueryRow(context.Background(), `SELECT image FROM products WHERE id = $1`, id).Scan(&image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return image, nil
}

// SetImage guarda el blob de imagen del producto.
func (r *ProductRepo) SetImage(id string, image []byte) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET image = $2, updated_at = now() WHERE id = $1`,
		id, image,
	)
	if err != nil {
		return fmt.Errorf("set product image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
