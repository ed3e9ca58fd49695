package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMetrics_ExposesRecordedCounters(t *testing.T) {
	// given
	metrics, err := NewMetrics("product-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = metrics.Provider.Shutdown(context.Background()) })

	counter, err := metrics.Provider.Meter("test").Int64Counter("product_store.operations")
	require.NoError(t, err)

	// when
	counter.Add(context.Background(), 3)
	rr := httptest.NewRecorder()
	metrics.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "product_store_operations_total")
}
