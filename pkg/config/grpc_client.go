package config

import (
	"fmt"
	"strings"
	"time"
)

// RemoteConfig configures the gRPC client used by the remote store backend.
type RemoteConfig struct {
	Addr       string           `koanf:"addr"`
	Timeout    time.Duration    `koanf:"timeout"`
	Resilience ResilienceConfig `koanf:"resilience"`
}

// String returns a string representation of the remote store client configuration.
func (c *RemoteConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Remote store (gRPC client) ---\n")
	b.WriteString(fmt.Sprintf("  addr: %s\n", c.Addr))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	b.WriteString(c.Resilience.String())
	return b.String()
}

func (c *RemoteConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("remote store gRPC address is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("remote store gRPC timeout is not configured")
	}
	return c.Resilience.Validate()
}
