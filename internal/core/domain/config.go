package domain

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glance.yaml"

	// ConfigEnvVar overrides the configuration file location.
	ConfigEnvVar = "GLANCE_CONFIG"

	// DefaultCacheBudget is the byte budget of the payload cache.
	DefaultCacheBudget int64 = 500 * 1024 * 1024

	// DefaultPrefetchWorkers bounds the number of concurrent background decodes.
	DefaultPrefetchWorkers = 2
)

// Config is the resolved runtime configuration.
type Config struct {
	Cache      CacheConfig
	Prefetch   PrefetchConfig
	Navigation NavigationConfig
	Watch      bool
	Log        LogConfig
	Metrics    MetricsConfig
}

// CacheConfig configures the payload cache.
type CacheConfig struct {
	Budget int64
}

// PrefetchConfig configures neighbour warming.
type PrefetchConfig struct {
	Enabled bool
	Workers int
}

// NavigationConfig configures sibling ordering.
type NavigationConfig struct {
	// Locale is a BCP 47 tag used for collation. Empty means root collation.
	Locale string
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON bool
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address. Empty disables the endpoint.
	Addr string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Cache:    CacheConfig{Budget: DefaultCacheBudget},
		Prefetch: PrefetchConfig{Enabled: true, Workers: DefaultPrefetchWorkers},
		Watch:    true,
	}
}
