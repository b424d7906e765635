package config

// File represents the structure of the glance.yaml configuration file.
// Pointer fields distinguish an omitted key from its zero value.
type File struct {
	Cache      CacheDTO      `yaml:"cache"`
	Prefetch   PrefetchDTO   `yaml:"prefetch"`
	Navigation NavigationDTO `yaml:"navigation"`
	Watch      *bool         `yaml:"watch"`
	Log        LogDTO        `yaml:"log"`
	Metrics    MetricsDTO    `yaml:"metrics"`
}

// CacheDTO configures the payload cache.
type CacheDTO struct {
	// Budget is a human readable byte size such as "500MiB" or "1GB".
	Budget string `yaml:"budget"`
}

// PrefetchDTO configures neighbour warming.
type PrefetchDTO struct {
	Enabled *bool `yaml:"enabled"`
	Workers *int  `yaml:"workers"`
}

// NavigationDTO configures sibling ordering.
type NavigationDTO struct {
	Locale string `yaml:"locale"`
}

// LogDTO configures the logger.
type LogDTO struct {
	JSON *bool `yaml:"json"`
}

// MetricsDTO configures the prometheus endpoint.
type MetricsDTO struct {
	Addr string `yaml:"addr"`
}
