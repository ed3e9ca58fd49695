package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthConfig enables bearer token verification on the mutating REST routes.
// Tokens are checked against the JWKS published by the identity provider.
type AuthConfig struct {
	Enabled     bool          `koanf:"enabled"`
	JwksURL     string        `koanf:"jwksurl"`
	Issuer      string        `koanf:"issuer"`
	ClientID    string        `koanf:"clientid"`
	MinInterval time.Duration `koanf:"mininterval"`
}

// String returns a string representation of the auth configuration.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	if c.Enabled {
		b.WriteString(fmt.Sprintf("  jwksurl: %s\n", c.JwksURL))
		b.WriteString(fmt.Sprintf("  issuer: %s\n", c.Issuer))
		b.WriteString(fmt.Sprintf("  clientid: %s\n", c.ClientID))
		b.WriteString(fmt.Sprintf("  mininterval: %s\n", c.MinInterval))
	}
	return b.String()
}

func (c *AuthConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.JwksURL == "" {
		return fmt.Errorf("auth JWKS URL cannot be empty")
	}
	if c.Issuer == "" {
		return fmt.Errorf("auth issuer cannot be empty")
	}
	if c.ClientID == "" {
		return fmt.Errorf("auth client ID cannot be empty")
	}
	if c.MinInterval <= 0 {
		return fmt.Errorf("auth JWKS minimum refresh interval must be greater than zero")
	}
	return nil
}
