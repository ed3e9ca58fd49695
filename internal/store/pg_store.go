package store

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	findAllQuery = `SELECT id, name, description, price, stock FROM products ORDER BY id`

	findByIDQuery = `SELECT id, name, description, price, stock FROM products WHERE id = $1`

	saveQuery = `INSERT INTO products (id, name, description, price, stock)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
    SET name        = EXCLUDED.name,
        description = EXCLUDED.description,
        price       = EXCLUDED.price,
        stock       = EXCLUDED.stock,
        updated_at  = now()
RETURNING id, name, description, price, stock`

	deleteQuery = `DELETE FROM products WHERE id = $1`
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id string) (*Product, error) {
	rows, err := p.db.Query(ctx, findByIDQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all products ordered by ID.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, findAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Save inserts the product or overwrites the row with the same ID.
func (p *PgStore) Save(ctx context.Context, product Product) (*Product, error) {
	rows, err := p.db.Query(ctx, saveQuery,
		product.ID, product.Name, product.Description, product.Price, product.Stock)
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &saved, nil
}

// Delete removes the row keyed by product.ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Delete(ctx context.Context, product Product) error {
	tag, err := p.db.Exec(ctx, deleteQuery, product.ID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}
