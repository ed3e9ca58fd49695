package remote

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"testing"
	"time"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/abgdnv/productstore/internal/service"
	"github.com/abgdnv/productstore/internal/store"
	productgrpc "github.com/abgdnv/productstore/internal/transport/grpc"
	"github.com/abgdnv/productstore/pkg/api/productv1"
	"github.com/abgdnv/productstore/pkg/config"
	"github.com/abgdnv/productstore/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var testRemoteCfg = config.RemoteConfig{
	Addr:    "passthrough://bufnet",
	Timeout: time.Second,
	Resilience: config.ResilienceConfig{
		Retry:          config.RetryConfig{MaxAttempts: 2, InitialBackoff: 10 * time.Millisecond},
		CircuitBreaker: config.CircuitBreakerConfig{ConsecutiveFailures: 5, ErrorRatePercent: 60, OpenTimeout: time.Second},
	},
}

// startServer serves backing through the product.v1 gRPC API and returns a remote store connected to it.
func startServer(t *testing.T, backing store.ProductStore) *Store {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := productgrpc.NewServer(service.NewService(backing), slog.Default())
	grpcServer, _ := server.NewGRPCServer(func(s *grpc.Server) {
		productv1.RegisterProductStoreServer(s, srv)
	})
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := Dial(testRemoteCfg, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		grpcServer.Stop()
	})
	return NewStore(conn)
}

func Test_RemoteStore_RoundTrip(t *testing.T) {
	// given
	ctx := context.Background()
	backing := store.NewInMemoryStore()
	remote := startServer(t, backing)
	widget := store.Product{ID: "p1", Name: "Widget", Description: "blue", Price: 1999, Stock: 4}

	// when
	saved, err := remote.Save(ctx, widget)
	require.NoError(t, err)
	found, err := remote.FindByID(ctx, "p1")
	require.NoError(t, err)
	all, err := remote.FindAll(ctx)
	require.NoError(t, err)

	// then
	assert.Equal(t, &widget, saved)
	assert.Equal(t, &widget, found)
	assert.Equal(t, []store.Product{widget}, all)
	local, err := backing.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, &widget, local)
}

func Test_RemoteStore_NotFound(t *testing.T) {
	ctx := context.Background()
	remote := startServer(t, store.NewInMemoryStore())

	testCases := []struct {
		name string
		call func() error
	}{
		{name: "find by id", call: func() error {
			_, err := remote.FindByID(ctx, "missing")
			return err
		}},
		{name: "delete", call: func() error {
			return remote.Delete(ctx, store.Product{ID: "missing"})
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.call()

			// then
			assert.ErrorIs(t, err, perrors.ErrProductNotFound)
		})
	}
}

func Test_RemoteStore_FindByID_EmptyIDIsAbsent(t *testing.T) {
	// given
	ctx := context.Background()
	remote := startServer(t, store.NewInMemoryStore())
	svc := service.NewService(remote)

	// when
	_, storeErr := remote.FindByID(ctx, "")
	product, err := svc.FindByID(ctx, "")

	// then
	assert.ErrorIs(t, storeErr, perrors.ErrProductNotFound)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func Test_RemoteStore_Delete(t *testing.T) {
	// given
	ctx := context.Background()
	backing := store.NewInMemoryStore()
	_, err := backing.Save(ctx, store.Product{ID: "p1"})
	require.NoError(t, err)
	remote := startServer(t, backing)

	// when
	err = remote.Delete(ctx, store.Product{ID: "p1"})

	// then
	require.NoError(t, err)
	_, err = backing.FindByID(ctx, "p1")
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func Test_FromStatus(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		isNotFound bool
		code       codes.Code
	}{
		{name: "not found", err: status.Error(codes.NotFound, "gone"), isNotFound: true, code: codes.Unknown},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), code: codes.Unavailable},
		{name: "plain error", err: errors.New("boom"), code: codes.Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := fromStatus("op", tc.err)

			// then
			assert.Equal(t, tc.isNotFound, errors.Is(err, perrors.ErrProductNotFound))
			if !tc.isNotFound {
				assert.ErrorIs(t, err, tc.err)
				assert.Equal(t, tc.code, status.Code(errors.Unwrap(err)))
			}
		})
	}
}
