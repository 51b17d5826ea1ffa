package main

import (
	"fmt"
	"strings"
	"sync"

	"prepress/internal/config"
)

type commandContext struct {
	configFlag   *string
	manifestFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, manifestFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		manifestFlag: manifestFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyManifestFlag(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyManifestFlag lets --manifest win over the config file and environment.
func (c *commandContext) applyManifestFlag(cfg *config.Config) error {
	if c.manifestFlag == nil {
		return nil
	}
	value := strings.TrimSpace(*c.manifestFlag)
	if value == "" {
		return nil
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}
	cfg.Manifest.Path = expanded
	return nil
}
