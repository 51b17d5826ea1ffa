package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prepress/internal/config"
)

type cliTestEnv struct {
	cfg          *config.Config
	configPath   string
	manifestPath string
	baseDir      string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfgVal := config.Default()
	cfgVal.Manifest.Path = filepath.Join(base, "Cargo.toml")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Lock.WaitTimeoutSeconds = 1

	configPath := filepath.Join(homeDir, ".config", "prepress", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, &cfgVal)

	return &cliTestEnv{
		cfg:          &cfgVal,
		configPath:   configPath,
		manifestPath: cfgVal.Manifest.Path,
		baseDir:      base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[manifest]\npath = %q\n\n[lock]\nenabled = %v\nwait_timeout_seconds = %d\n\n[logging]\nformat = %q\nlevel = %q\ndir = %q\n",
		cfg.Manifest.Path,
		cfg.Lock.Enabled,
		cfg.Lock.WaitTimeoutSeconds,
		cfg.Logging.Format,
		cfg.Logging.Level,
		cfg.Logging.Dir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
