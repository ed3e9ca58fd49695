package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Port    int           `koanf:"port"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"server"`
	Store struct {
		Backend string `koanf:"backend"`
	} `koanf:"store"`
	Origins []string `koanf:"origins"`
}

var errInvalidPort = errors.New("invalid port")

func (c *testConfig) Validate() error {
	if c.Server.Port <= 0 {
		return errInvalidPort
	}
	return nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load_FromYAML(t *testing.T) {
	// given
	path := writeConfigFile(t, "server:\n  port: 8080\n  timeout: 5s\nstore:\n  backend: memory\n")
	t.Setenv("TESTSVC_CONFIG_FILE", path)

	// when
	cfg, err := Load[*testConfig]("testsvc")

	// then
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "memory", cfg.Store.Backend)
}

func Test_Load_EnvOverridesYAML(t *testing.T) {
	// given
	path := writeConfigFile(t, "server:\n  port: 8080\nstore:\n  backend: memory\n")
	t.Setenv("TESTSVC_CONFIG_FILE", path)
	t.Setenv("TESTSVC_SERVER_PORT", "9090")
	t.Setenv("TESTSVC_STORE_BACKEND", "postgres")
	t.Setenv("TESTSVC_ORIGINS", "http://a.example,http://b.example")

	// when
	cfg, err := Load[*testConfig]("testsvc")

	// then
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Origins)
}

func Test_Load_ValidationError(t *testing.T) {
	// given
	path := writeConfigFile(t, "server:\n  port: 0\n")
	t.Setenv("TESTSVC_CONFIG_FILE", path)

	// when
	_, err := Load[*testConfig]("testsvc")

	// then
	require.ErrorIs(t, err, errInvalidPort)
}

func Test_Load_MissingFileUsesEnvOnly(t *testing.T) {
	// given
	t.Setenv("TESTSVC_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("TESTSVC_SERVER_PORT", "7070")

	// when
	cfg, err := Load[*testConfig]("testsvc")

	// then
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}
