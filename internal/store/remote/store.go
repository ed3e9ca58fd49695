// Package remote implements store.ProductStore on top of the product.v1.ProductStore gRPC API
// of another service instance.
package remote

import (
	"context"
	"fmt"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/abgdnv/productstore/internal/store"
	productgrpc "github.com/abgdnv/productstore/internal/transport/grpc"
	"github.com/abgdnv/productstore/pkg/api/productv1"
	"github.com/abgdnv/productstore/pkg/client/grpc/interceptors"
	"github.com/abgdnv/productstore/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Dial creates a client connection to the remote product store. Calls pass through
// the circuit breaker, then the retry interceptor, and every attempt is bounded by cfg.Timeout.
func Dial(cfg config.RemoteConfig, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			interceptors.NewCircuitBreaker("remote-product-store", cfg.Resilience.CircuitBreaker),
			interceptors.NewRetryInterceptor(cfg.Resilience.Retry),
			interceptors.UnaryClientTimeoutInterceptor(cfg.Timeout),
		),
	}, opts...)
	conn, err := grpc.NewClient(cfg.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client connection: %w", err)
	}
	return conn, nil
}

// Store forwards product store calls to a remote service instance.
type Store struct {
	client productv1.ProductStoreClient
}

func NewStore(cc grpc.ClientConnInterface) *Store {
	return &Store{client: productv1.NewProductStoreClient(cc)}
}

func (s *Store) FindAll(ctx context.Context) ([]store.Product, error) {
	list, err := s.client.ListProducts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus("list products", err)
	}
	products, err := productgrpc.ProductsFromList(list)
	if err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*store.Product, error) {
	res, err := s.client.GetProduct(ctx, wrapperspb.String(id))
	if err != nil {
		return nil, fromStatus("get product", err)
	}
	p, err := productgrpc.ProductFromStruct(res)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &p, nil
}

func (s *Store) Save(ctx context.Context, product store.Product) (*store.Product, error) {
	res, err := s.client.SaveProduct(ctx, productgrpc.ProductToStruct(product))
	if err != nil {
		return nil, fromStatus("save product", err)
	}
	p, err := productgrpc.ProductFromStruct(res)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &p, nil
}

func (s *Store) Delete(ctx context.Context, product store.Product) error {
	if _, err := s.client.DeleteProduct(ctx, productgrpc.ProductToStruct(product)); err != nil {
		return fromStatus("delete product", err)
	}
	return nil
}

// fromStatus maps codes.NotFound back to ErrProductNotFound and wraps everything else.
func fromStatus(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return perrors.ErrProductNotFound
	}
	return fmt.Errorf("remote %s: %w", op, err)
}
