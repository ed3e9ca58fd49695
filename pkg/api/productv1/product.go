// Package productv1 defines the product.v1.ProductStore gRPC service.
//
// Messages are protobuf well-known types: a product travels as a google.protobuf.Struct
// with the fields id, name, description, price and stock.
package productv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "product.v1.ProductStore"

const (
	ListProductsMethod  = "/" + ServiceName + "/ListProducts"
	GetProductMethod    = "/" + ServiceName + "/GetProduct"
	SaveProductMethod   = "/" + ServiceName + "/SaveProduct"
	UpdateProductMethod = "/" + ServiceName + "/UpdateProduct"
	DeleteProductMethod = "/" + ServiceName + "/DeleteProduct"
)

// ProductStoreServer is the server API for the product.v1.ProductStore service.
type ProductStoreServer interface {
	ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetProduct(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	SaveProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// UpdateProduct takes a struct with the fields id and product.
	UpdateProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

// UnimplementedProductStoreServer returns codes.Unimplemented for every method.
type UnimplementedProductStoreServer struct{}

func (UnimplementedProductStoreServer) ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedProductStoreServer) GetProduct(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedProductStoreServer) SaveProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveProduct not implemented")
}

func (UnimplementedProductStoreServer) UpdateProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}

func (UnimplementedProductStoreServer) DeleteProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}

// RegisterProductStoreServer registers srv on s.
func RegisterProductStoreServer(s grpc.ServiceRegistrar, srv ProductStoreServer) {
	s.RegisterService(&ProductStore_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(ProductStoreServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProductStoreServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ProductStoreServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ProductStore_ServiceDesc is the grpc.ServiceDesc for the product.v1.ProductStore service.
var ProductStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(ListProductsMethod, ProductStoreServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unaryHandler(GetProductMethod, ProductStoreServer.GetProduct),
		},
		{
			MethodName: "SaveProduct",
			Handler:    unaryHandler(SaveProductMethod, ProductStoreServer.SaveProduct),
		},
		{
			MethodName: "UpdateProduct",
			Handler:    unaryHandler(UpdateProductMethod, ProductStoreServer.UpdateProduct),
		},
		{
			MethodName: "DeleteProduct",
			Handler:    unaryHandler(DeleteProductMethod, ProductStoreServer.DeleteProduct),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "product/v1/product.proto",
}

// ProductStoreClient is the client API for the product.v1.ProductStore service.
type ProductStoreClient interface {
	ListProducts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetProduct(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	SaveProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type productStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewProductStoreClient(cc grpc.ClientConnInterface) ProductStoreClient {
	return &productStoreClient{cc: cc}
}

func (c *productStoreClient) ListProducts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListProductsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productStoreClient) GetProduct(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetProductMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productStoreClient) SaveProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SaveProductMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productStoreClient) UpdateProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, UpdateProductMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productStoreClient) DeleteProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteProductMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
