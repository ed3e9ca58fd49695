package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InMemory_FindByID(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	_, err := s.Save(ctx, Product{ID: "p1", Name: "Widget", Price: 100, Stock: 3})
	require.NoError(t, err)

	testCases := []struct {
		name        string
		id          string
		expected    *Product
		expectError error
	}{
		{name: "existing product", id: "p1", expected: &Product{ID: "p1", Name: "Widget", Price: 100, Stock: 3}},
		{name: "unknown id", id: "p2", expectError: perrors.ErrProductNotFound},
		{name: "empty id", id: "", expectError: perrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			found, err := s.FindByID(ctx, tc.id)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_InMemory_SaveOverwrites(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()
	_, err := s.Save(ctx, Product{ID: "p1", Name: "Widget"})
	require.NoError(t, err)

	// when
	saved, err := s.Save(ctx, Product{ID: "p1", Name: "Widget2"})

	// then
	require.NoError(t, err)
	assert.Equal(t, "Widget2", saved.Name)
	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "p1", Name: "Widget2"}}, all)
}

func Test_InMemory_FindAll(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()

	// when
	empty, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, id := range []string{"c", "a", "b"} {
		_, err := s.Save(ctx, Product{ID: id})
		require.NoError(t, err)
	}
	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "a"}, {ID: "b"}, {ID: "c"}}, all)
}

func Test_InMemory_Delete(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name        string
		seed        []Product
		toDelete    Product
		expectError error
	}{
		{name: "existing product", seed: []Product{{ID: "p1", Name: "Widget"}}, toDelete: Product{ID: "p1"}},
		{name: "only the id is used", seed: []Product{{ID: "p1", Name: "Widget"}}, toDelete: Product{ID: "p1", Name: "Other"}},
		{name: "missing product", toDelete: Product{ID: "p1"}, expectError: perrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewInMemoryStore()
			for _, p := range tc.seed {
				_, err := s.Save(ctx, p)
				require.NoError(t, err)
			}

			// when
			err := s.Delete(ctx, tc.toDelete)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			_, err = s.FindByID(ctx, tc.toDelete.ID)
			assert.ErrorIs(t, err, perrors.ErrProductNotFound)
		})
	}
}

func Test_InMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("p%d", i)
			_, _ = s.Save(ctx, Product{ID: id})
			_, _ = s.FindByID(ctx, id)
			_, _ = s.FindAll(ctx)
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
