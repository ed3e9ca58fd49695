package store

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumented records a span and an operation counter for every call of the wrapped store.
type instrumented struct {
	inner      ProductStore
	tracer     trace.Tracer
	operations metric.Int64Counter
}

// WithTracing wraps inner with OpenTelemetry spans and the product_store.operations counter.
func WithTracing(inner ProductStore, tracer trace.Tracer, meter metric.Meter) (ProductStore, error) {
	counter, err := meter.Int64Counter("product_store.operations",
		metric.WithDescription("Number of product store operations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create operations counter: %w", err)
	}
	return &instrumented{inner: inner, tracer: tracer, operations: counter}, nil
}

func (s *instrumented) FindAll(ctx context.Context) ([]Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductStore.FindAll")
	defer span.End()

	products, err := s.inner.FindAll(ctx)
	span.SetAttributes(attribute.Int("product.count", len(products)))
	s.finish(ctx, span, "find_all", err)
	return products, err
}

func (s *instrumented) FindByID(ctx context.Context, id string) (*Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductStore.FindByID", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product, err := s.inner.FindByID(ctx, id)
	s.finish(ctx, span, "find_by_id", err)
	return product, err
}

func (s *instrumented) Save(ctx context.Context, product Product) (*Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductStore.Save", trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	saved, err := s.inner.Save(ctx, product)
	s.finish(ctx, span, "save", err)
	return saved, err
}

func (s *instrumented) Delete(ctx context.Context, product Product) error {
	ctx, span := s.tracer.Start(ctx, "ProductStore.Delete", trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	err := s.inner.Delete(ctx, product)
	s.finish(ctx, span, "delete", err)
	return err
}

// finish sets the span status and counts the call. A missing product is an outcome, not a failure.
func (s *instrumented) finish(ctx context.Context, span trace.Span, op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, perrors.ErrProductNotFound):
		outcome = "not_found"
		span.SetAttributes(attribute.Bool("product.found", false))
	default:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
