package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "symballs.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
server:
  addr: 127.0.0.1:9000
levels:
  dir: ./levels
  watch: true
store:
  in_memory: true
log:
  level: debug
trace:
  exporter: stdout
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "./levels", cfg.Levels.Dir)
	assert.True(t, cfg.Levels.Watch)
	assert.True(t, cfg.Store.InMemory)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	// untouched keys keep their defaults
	assert.Equal(t, 200_000, cfg.Solver.MaxNodes)
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Trace.Exporter)
	assert.Equal(t, 20, cfg.Server.Burst)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown key", "server:\n  port: 1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"zero budget", "solver:\n  max_nodes: 0\n"},
		{"not yaml", "server: [\n"},
		{"negative rate", "server:\n  rate_limit: -1\n"},
		{"bad exporter", "trace:\n  exporter: zipkin\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
