package grpc

import (
	"fmt"
	"math"

	"github.com/abgdnv/productstore/internal/store"
	"google.golang.org/protobuf/types/known/structpb"
)

// maxExactInt is the largest integer a Struct number holds without loss.
const maxExactInt = 1 << 53

// ProductToStruct encodes a product as a google.protobuf.Struct.
func ProductToStruct(p store.Product) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":          structpb.NewStringValue(p.ID),
		"name":        structpb.NewStringValue(p.Name),
		"description": structpb.NewStringValue(p.Description),
		"price":       structpb.NewNumberValue(float64(p.Price)),
		"stock":       structpb.NewNumberValue(float64(p.Stock)),
	}}
}

// ProductFromStruct decodes a product. Missing fields keep their zero value.
func ProductFromStruct(s *structpb.Struct) (store.Product, error) {
	var p store.Product
	if s == nil {
		return p, fmt.Errorf("product is missing")
	}
	var err error
	fields := s.GetFields()
	if p.ID, err = stringField(fields, "id"); err != nil {
		return p, err
	}
	if p.Name, err = stringField(fields, "name"); err != nil {
		return p, err
	}
	if p.Description, err = stringField(fields, "description"); err != nil {
		return p, err
	}
	if p.Price, err = intField(fields, "price", -maxExactInt, maxExactInt); err != nil {
		return p, err
	}
	stock, err := intField(fields, "stock", math.MinInt32, math.MaxInt32)
	if err != nil {
		return p, err
	}
	p.Stock = int32(stock)
	return p, nil
}

// ProductsToList encodes products as a google.protobuf.ListValue of structs.
func ProductsToList(products []store.Product) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(products))
	for _, p := range products {
		values = append(values, structpb.NewStructValue(ProductToStruct(p)))
	}
	return &structpb.ListValue{Values: values}
}

// ProductsFromList decodes a list produced by ProductsToList.
func ProductsFromList(l *structpb.ListValue) ([]store.Product, error) {
	products := make([]store.Product, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("item %d is not a struct", i)
		}
		p, err := ProductFromStruct(sv.StructValue)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// UpdateRequest encodes the UpdateProduct request.
func UpdateRequest(id string, p store.Product) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":      structpb.NewStringValue(id),
		"product": structpb.NewStructValue(ProductToStruct(p)),
	}}
}

// ParseUpdateRequest decodes the UpdateProduct request into the path id and the product.
func ParseUpdateRequest(s *structpb.Struct) (string, store.Product, error) {
	fields := s.GetFields()
	id, err := stringField(fields, "id")
	if err != nil {
		return "", store.Product{}, err
	}
	pv, ok := fields["product"].GetKind().(*structpb.Value_StructValue)
	if !ok {
		return "", store.Product{}, fmt.Errorf("field product must be a struct")
	}
	p, err := ProductFromStruct(pv.StructValue)
	return id, p, err
}

func stringField(fields map[string]*structpb.Value, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("field %s must be a string", name)
	}
	return s.StringValue, nil
}

func intField(fields map[string]*structpb.Value, name string, lo, hi float64) (int64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %s must be a number", name)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f < lo || f > hi {
		return 0, fmt.Errorf("field %s must be an integer in range", name)
	}
	return int64(f), nil
}
