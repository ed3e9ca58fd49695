package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/abgdnv/productstore/pkg/messaging"
)

const (
	SubjectProductSaved   = "product.saved"
	SubjectProductDeleted = "product.deleted"
)

// ProductSavedEvent is published after a product was inserted or replaced.
type ProductSavedEvent struct {
	Product Product `json:"product"`
}

func (e ProductSavedEvent) Subject() string { return SubjectProductSaved }

func (e ProductSavedEvent) Payload() ([]byte, error) { return json.Marshal(e) }

// ProductDeletedEvent is published after a product was removed.
type ProductDeletedEvent struct {
	ID string `json:"id"`
}

func (e ProductDeletedEvent) Subject() string { return SubjectProductDeleted }

func (e ProductDeletedEvent) Payload() ([]byte, error) { return json.Marshal(e) }

// eventStore publishes change events for successful writes of the wrapped store.
type eventStore struct {
	ProductStore
	publisher messaging.Publisher
	logger    *slog.Logger
}

// WithEvents wraps inner so that successful Save and Delete calls publish a change event.
// Publish failures are logged and never change the result of the store call.
func WithEvents(inner ProductStore, publisher messaging.Publisher, logger *slog.Logger) ProductStore {
	return &eventStore{
		ProductStore: inner,
		publisher:    publisher,
		logger:       logger.With("component", "product_events"),
	}
}

func (s *eventStore) Save(ctx context.Context, product Product) (*Product, error) {
	saved, err := s.ProductStore.Save(ctx, product)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, ProductSavedEvent{Product: *saved})
	return saved, nil
}

func (s *eventStore) Delete(ctx context.Context, product Product) error {
	if err := s.ProductStore.Delete(ctx, product); err != nil {
		return err
	}
	s.publish(ctx, ProductDeletedEvent{ID: product.ID})
	return nil
}

func (s *eventStore) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "subject", event.Subject(), "error", err)
	}
}
