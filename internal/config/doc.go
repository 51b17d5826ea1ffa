// Package config loads, normalizes, and validates prepress configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PREPRESS_MANIFEST environment
// fallback. The Config type centralizes every knob the CLI needs, so the
// manifest location, lock behaviour, and log output are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
