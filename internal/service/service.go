// Package service provides the CRUD contract over a product store.
package service

import (
	"context"
	"errors"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/abgdnv/productstore/internal/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying data access.
type ProductService interface {
	// FindAll returns all available products in the order the store yields them.
	FindAll(ctx context.Context) ([]store.Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns nil and no error if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*store.Product, error)

	// Add saves the product. An existing product with the same ID is overwritten.
	Add(ctx context.Context, product store.Product) error

	// Update saves the product under product.ID. The id argument is not consulted.
	Update(ctx context.Context, id string, product store.Product) error

	// Delete removes the product stored under product.ID.
	Delete(ctx context.Context, product store.Product) error
}

// Service implements ProductService by forwarding every call to its store.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// FindAll returns the products of the store unchanged.
func (s *Service) FindAll(ctx context.Context) ([]store.Product, error) {
	return s.repository.FindAll(ctx)
}

// FindByID maps ErrProductNotFound to an absent product; any other error is returned as is.
func (s *Service) FindByID(ctx context.Context, id string) (*store.Product, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// Add saves product, overwriting any record with the same id.
func (s *Service) Add(ctx context.Context, product store.Product) error {
	_, err := s.repository.Save(ctx, product)
	return err
}

// Update ignores id: the record written is the one keyed by product.ID.
func (s *Service) Update(ctx context.Context, _ string, product store.Product) error {
	_, err := s.repository.Save(ctx, product)
	return err
}

// Delete removes the record keyed by product.ID; a missing record yields ErrProductNotFound.
func (s *Service) Delete(ctx context.Context, product store.Product) error {
	return s.repository.Delete(ctx, product)
}
