package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeManifest(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeLock()
	return nil
}

func (c *Config) normalizeManifest() error {
	path := strings.TrimSpace(c.Manifest.Path)
	if path == "" || path == defaultManifestPath {
		if value, ok := os.LookupEnv(ManifestPathEnv); ok && strings.TrimSpace(value) != "" {
			path = strings.TrimSpace(value)
		}
	}
	if path == "" {
		path = defaultManifestPath
	}

	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("manifest.path: %w", err)
	}
	c.Manifest.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		expanded, err := expandPath(c.Logging.Dir)
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = expanded
	} else {
		c.Logging.Dir = ""
	}
	return nil
}

func (c *Config) normalizeLock() {
	if c.Lock.WaitTimeoutSeconds <= 0 {
		c.Lock.WaitTimeoutSeconds = defaultLockTimeoutSeconds
	}
}
