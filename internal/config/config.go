// Package config defines the product service configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/productstore/pkg/config"
	"github.com/abgdnv/productstore/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Store      config.StoreConfig      `koanf:"store"`
	Database   config.DatabaseConfig   `koanf:"database"`
	Remote     config.RemoteConfig     `koanf:"remote"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Metrics    config.MetricsConfig    `koanf:"metrics"`
	CORS       config.CORSConfig       `koanf:"cors"`
	NATS       config.NATSConfig       `koanf:"nats"`
	Auth       config.AuthConfig       `koanf:"auth"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString("\n--- gRPC server ---\n")
	b.WriteString(fmt.Sprintf("  port: %s\n", c.GRPC.Port))
	b.WriteString(c.Store.String())
	switch c.Store.Backend {
	case config.StoreBackendPostgres:
		b.WriteString(c.Database.String())
	case config.StoreBackendRemote:
		b.WriteString(c.Remote.String())
	}
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.CORS.String())
	b.WriteString(c.NATS.String())
	b.WriteString(c.Auth.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid.
// Database and remote settings are only checked for the backend that uses them.
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.GRPC,
		&c.Store,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Telemetry,
		&c.Metrics,
		&c.CORS,
		&c.NATS,
		&c.Auth,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	switch c.Store.Backend {
	case config.StoreBackendPostgres:
		return c.Database.Validate()
	case config.StoreBackendRemote:
		return c.Remote.Validate()
	}
	return nil
}
