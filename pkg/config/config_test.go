package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MaskURL(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "empty", url: "", expected: "<not configured>"},
		{name: "with credentials", url: "postgres://user:secret@db:5432/products", expected: "****@db:5432/products"},
		{name: "without credentials", url: "postgres://db:5432/products", expected: "****"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskURL(tc.url))
		})
	}
}

func Test_DatabaseConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     DatabaseConfig
		wantErr bool
	}{
		{name: "valid", cfg: DatabaseConfig{URL: "postgres://u:p@h/db", Timeout: time.Second}},
		{name: "valid postgresql scheme", cfg: DatabaseConfig{URL: "postgresql://u:p@h/db", Timeout: time.Second}},
		{name: "empty url", cfg: DatabaseConfig{Timeout: time.Second}, wantErr: true},
		{name: "wrong scheme", cfg: DatabaseConfig{URL: "mysql://u:p@h/db", Timeout: time.Second}, wantErr: true},
		{name: "no timeout", cfg: DatabaseConfig{URL: "postgres://u:p@h/db"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_StoreConfig_Validate(t *testing.T) {
	t.Run("defaults to postgres", func(t *testing.T) {
		cfg := StoreConfig{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, StoreBackendPostgres, cfg.Backend)
	})
	t.Run("accepts known backends", func(t *testing.T) {
		for _, backend := range []string{StoreBackendMemory, StoreBackendPostgres, StoreBackendRemote} {
			cfg := StoreConfig{Backend: backend}
			assert.NoError(t, cfg.Validate(), backend)
		}
	})
	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := StoreConfig{Backend: "mongo"}
		assert.Error(t, cfg.Validate())
	})
}

func Test_OptionalSections_DisabledSkipValidation(t *testing.T) {
	nats := NATSConfig{}
	auth := AuthConfig{}
	telemetry := TelemetryConfig{}
	assert.NoError(t, nats.Validate())
	assert.NoError(t, auth.Validate())
	assert.NoError(t, telemetry.Validate())

	nats.Enabled = true
	auth.Enabled = true
	telemetry.Enabled = true
	assert.Error(t, nats.Validate())
	assert.Error(t, auth.Validate())
	assert.Error(t, telemetry.Validate())
}

func Test_RemoteConfig_Validate(t *testing.T) {
	valid := RemoteConfig{
		Addr:    "products:9000",
		Timeout: time.Second,
		Resilience: ResilienceConfig{
			Retry:          RetryConfig{MaxAttempts: 3, InitialBackoff: 100 * time.Millisecond},
			CircuitBreaker: CircuitBreakerConfig{ConsecutiveFailures: 5, ErrorRatePercent: 60, OpenTimeout: 5 * time.Second},
		},
	}
	require.NoError(t, valid.Validate())

	noAddr := valid
	noAddr.Addr = ""
	assert.Error(t, noAddr.Validate())

	badRate := valid
	badRate.Resilience.CircuitBreaker.ErrorRatePercent = 101
	assert.Error(t, badRate.Validate())
}

func Test_CORSConfig_Defaults(t *testing.T) {
	cfg := CORSConfig{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.MaxAge)
}
