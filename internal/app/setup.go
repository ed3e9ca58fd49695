// Package app contains the application setup for the product service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/productstore/internal/config"
	"github.com/abgdnv/productstore/internal/service"
	"github.com/abgdnv/productstore/internal/store"
	"github.com/abgdnv/productstore/internal/store/migrations"
	"github.com/abgdnv/productstore/internal/store/remote"
	grpcImpl "github.com/abgdnv/productstore/internal/transport/grpc"
	"github.com/abgdnv/productstore/internal/transport/rest"
	"github.com/abgdnv/productstore/pkg/api/productv1"
	"github.com/abgdnv/productstore/pkg/auth"
	"github.com/abgdnv/productstore/pkg/bootstrap"
	pkgconfig "github.com/abgdnv/productstore/pkg/config"
	"github.com/abgdnv/productstore/pkg/messaging"
	"github.com/abgdnv/productstore/pkg/server"
	"github.com/abgdnv/productstore/pkg/web"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const instrumentationName = "github.com/abgdnv/productstore"

// Options carries the optional collaborators of the service. Nil fields disable the feature.
type Options struct {
	Publisher messaging.Publisher
	Verifier  auth.Verifier
	Metrics   http.Handler
}

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
	Verifier       auth.Verifier
	Metrics        http.Handler
}

// SetupDependencies decorates repo with change events (when a publisher is given) and
// OpenTelemetry instrumentation, and builds the product service on top of it.
func SetupDependencies(repo store.ProductStore, logger *slog.Logger, opts Options) (*Dependencies, error) {
	if opts.Publisher != nil {
		repo = store.WithEvents(repo, opts.Publisher, logger)
	}
	repo, err := store.WithTracing(repo, otel.Tracer(instrumentationName), otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		ProductService: service.NewService(repo),
		Logger:         logger,
		Verifier:       opts.Verifier,
		Metrics:        opts.Metrics,
	}, nil
}

// OpenStore creates the store backend selected by cfg.Store.Backend.
// The returned close function releases the backend's connections.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.ProductStore, func(), error) {
	switch cfg.Store.Backend {
	case pkgconfig.StoreBackendMemory:
		logger.Info("Using in-memory product store")
		return store.NewInMemoryStore(), func() {}, nil

	case pkgconfig.StoreBackendRemote:
		conn, err := remote.Dial(cfg.Remote)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using remote product store", slog.String("addr", cfg.Remote.Addr))
		closeFn := func() {
			if err := conn.Close(); err != nil {
				logger.Error("Failed to close gRPC client connection", slog.String("error", err.Error()))
			}
		}
		return remote.NewStore(conn), closeFn, nil

	default:
		if cfg.Database.Migrate {
			if err := migrations.Up(cfg.Database.URL); err != nil {
				return nil, nil, err
			}
			logger.Info("Database migrations applied")
		}
		dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database connection pool: %w", err)
		}
		logger.Info("Successfully connected to the database!")
		return store.NewPgStore(dbPool), dbPool.Close, nil
	}
}

// SetupHttpHandler initializes the router and routes of the product service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies, cors pkgconfig.CORSConfig, metricsPath string) http.Handler {
	mux := server.NewChiRouter(deps.Logger, web.CORS(cors))

	var guard []func(http.Handler) http.Handler
	if deps.Verifier != nil {
		guard = append(guard, web.BearerAuth(deps.Verifier, deps.Logger))
	}
	rest.NewHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux, guard...)

	if deps.Metrics != nil {
		mux.Handle(metricsPath, deps.Metrics)
	}
	return otelhttp.NewHandler(mux, "product-http")
}

// SetupHttpServer creates and configures an HTTP server for the product service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := SetupHttpHandler(deps, cfg.CORS, cfg.Metrics.Path)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, handler)
}

// SetupGrpcServer initializes the gRPC server for the product service.
func SetupGrpcServer(deps *Dependencies) (*grpc.Server, *health.Server) {
	productRegisterFunc := func(s *grpc.Server) {
		productv1.RegisterProductStoreServer(s, grpcImpl.NewServer(deps.ProductService, deps.Logger))
	}
	return server.NewGRPCServer(productRegisterFunc)
}
