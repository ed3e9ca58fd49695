package grpc

import (
	"testing"

	"github.com/abgdnv/productstore/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func Test_ProductFromStruct(t *testing.T) {
	testCases := []struct {
		name        string
		fields      map[string]any
		expected    store.Product
		expectError bool
	}{
		{
			name:     "all fields",
			fields:   map[string]any{"id": "p1", "name": "Widget", "description": "d", "price": 1999, "stock": 3},
			expected: store.Product{ID: "p1", Name: "Widget", Description: "d", Price: 1999, Stock: 3},
		},
		{name: "missing fields are zero", fields: map[string]any{"id": "p1"}, expected: store.Product{ID: "p1"}},
		{name: "unknown fields are ignored", fields: map[string]any{"id": "p1", "color": "red"}, expected: store.Product{ID: "p1"}},
		{name: "id must be a string", fields: map[string]any{"id": 1}, expectError: true},
		{name: "price must be a number", fields: map[string]any{"price": "10"}, expectError: true},
		{name: "price must be whole", fields: map[string]any{"price": 1.5}, expectError: true},
		{name: "stock must fit int32", fields: map[string]any{"stock": 1 << 40}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s, err := structpb.NewStruct(tc.fields)
			require.NoError(t, err)

			// when
			got, err := ProductFromStruct(s)

			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func Test_ProductFromStruct_Nil(t *testing.T) {
	_, err := ProductFromStruct(nil)
	assert.Error(t, err)
}

func Test_ProductsFromList_RejectsNonStruct(t *testing.T) {
	// given
	l := &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("p1")}}

	// when
	_, err := ProductsFromList(l)

	// then
	assert.ErrorContains(t, err, "item 0")
}

func Test_ParseUpdateRequest(t *testing.T) {
	// given
	p := store.Product{ID: "p1", Name: "Widget"}

	// when
	id, got, err := ParseUpdateRequest(UpdateRequest("other", p))

	// then
	require.NoError(t, err)
	assert.Equal(t, "other", id)
	assert.Equal(t, p, got)
}
