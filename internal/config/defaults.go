package config

const (
	defaultManifestPath       = "Cargo.toml"
	defaultLockEnabled        = true
	defaultLockTimeoutSeconds = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// ManifestPathEnv overrides the manifest path when the config leaves it unset.
const ManifestPathEnv = "PREPRESS_MANIFEST"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Manifest: Manifest{
			Path: defaultManifestPath,
		},
		Lock: Lock{
			Enabled:            defaultLockEnabled,
			WaitTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
