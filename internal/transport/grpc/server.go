// Package grpc provides the product.v1.ProductStore gRPC server.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/abgdnv/productstore/internal/service"
	"github.com/abgdnv/productstore/internal/store"
	"github.com/abgdnv/productstore/pkg/api/productv1"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Server struct {
	// Embed the unimplemented server for forward compatibility
	productv1.UnimplementedProductStoreServer
	service  service.ProductService
	logger   *slog.Logger
	validate *validator.Validate
}

func NewServer(service service.ProductService, logger *slog.Logger) *Server {
	return &Server{
		service:  service,
		logger:   logger.With("component", "grpc_server"),
		validate: validator.New(),
	}
}

func (s *Server) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	products, err := s.service.FindAll(ctx)
	if err != nil {
		return nil, s.internal(ctx, "service.FindAll failed", err)
	}
	return ProductsToList(products), nil
}

func (s *Server) GetProduct(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	product, err := s.service.FindByID(ctx, id)
	if err != nil {
		return nil, s.internal(ctx, "service.FindByID failed", err)
	}
	if product == nil {
		return nil, status.Errorf(codes.NotFound, "product %s not found", id)
	}
	return ProductToStruct(*product), nil
}

func (s *Server) SaveProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	product, err := ProductFromStruct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product: %v", err)
	}
	if err := s.validateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := s.service.Add(ctx, product); err != nil {
		return nil, s.internal(ctx, "service.Add failed", err)
	}
	return ProductToStruct(product), nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, product, err := ParseUpdateRequest(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid update request: %v", err)
	}
	if err := s.validateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := s.service.Update(ctx, id, product); err != nil {
		return nil, s.internal(ctx, "service.Update failed", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	product, err := ProductFromStruct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product: %v", err)
	}
	if err := s.validate.Var(product.ID, "required"); err != nil {
		return nil, status.Error(codes.InvalidArgument, "product id is required")
	}
	if err := s.service.Delete(ctx, product); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, status.Errorf(codes.NotFound, "product %s not found", product.ID)
		}
		return nil, s.internal(ctx, "service.Delete failed", err)
	}
	return &emptypb.Empty{}, nil
}

// validateProduct applies the struct tag rules of store.Product, as the REST handler does.
func (s *Server) validateProduct(ctx context.Context, product store.Product) error {
	err := s.validate.Struct(product)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return s.internal(ctx, "validating product failed", err)
	}
	failed := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failed = append(failed, fmt.Sprintf("%s failed on rule: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	s.logger.WarnContext(ctx, "Validation errors occurred", "errors", failed)
	return status.Errorf(codes.InvalidArgument, "invalid product: %s", strings.Join(failed, "; "))
}

func (s *Server) internal(ctx context.Context, msg string, err error) error {
	s.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	return status.Error(codes.Internal, "internal server error")
}
