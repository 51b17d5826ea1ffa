// Package testsupport provides shared helpers for prepress tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"prepress/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Manifest.Path = filepath.Join(base, "Cargo.toml")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Lock.WaitTimeoutSeconds = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithManifestPath overrides the manifest path on the test config.
func WithManifestPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Manifest.Path = path
	}
}

// WithLockDisabled turns the advisory lock off on the test config.
func WithLockDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lock.Enabled = false
	}
}

// WriteManifest writes content to the config's manifest path, creating parent
// directories as needed, and returns the path.
func WriteManifest(t testing.TB, cfg *config.Config, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(cfg.Manifest.Path), 0o755); err != nil {
		t.Fatalf("mkdir manifest dir: %v", err)
	}
	if err := os.WriteFile(cfg.Manifest.Path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return cfg.Manifest.Path
}
