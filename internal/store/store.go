// Package store provides the persistence layer for products.
package store

import (
	"context"
)

// Product represents a product entity in the store.
// Only ID has meaning to the store; the remaining fields round-trip unchanged.
type Product struct {
	ID          string `json:"id"          validate:"required,max=64"`
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Price       int64  `json:"price"       validate:"min=0"` // Price in cents
	Stock       int32  `json:"stock"       validate:"min=0"`
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database, remote).
type ProductStore interface {
	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Save inserts the product or replaces the one stored under the same ID.
	Save(ctx context.Context, product Product) (*Product, error)

	// Delete removes the product stored under product.ID.
	// Returns ErrProductNotFound if no product exists with that ID.
	Delete(ctx context.Context, product Product) error
}
