package config

import (
	"fmt"
	"strings"
	"time"
)

// CORSConfig lists the origins allowed to call the REST API from a browser.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowedorigins"`
	MaxAge         time.Duration `koanf:"maxage"`
}

const defaultCORSMaxAge = 5 * time.Minute

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  allowedorigins: %s\n", strings.Join(c.AllowedOrigins, ",")))
	b.WriteString(fmt.Sprintf("  maxage: %s\n", c.MaxAge))
	return b.String()
}

func (c *CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = defaultCORSMaxAge
	}
	return nil
}
