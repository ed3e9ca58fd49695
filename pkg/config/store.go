package config

import (
	"fmt"
	"strings"
)

// Supported product store backends.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendRemote   = "remote"
)

// StoreConfig selects the persistence backend the service delegates to.
type StoreConfig struct {
	Backend string `koanf:"backend"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  backend: %s\n", c.Backend))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case StoreBackendMemory, StoreBackendPostgres, StoreBackendRemote:
		return nil
	case "":
		c.Backend = StoreBackendPostgres
		return nil
	default:
		return fmt.Errorf("unknown store backend: %s", c.Backend)
	}
}
