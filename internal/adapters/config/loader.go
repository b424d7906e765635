// Package config provides the configuration loader for glance.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger    ports.Logger
	fs        FileSystem
	configDir func() (string, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem replaces the filesystem the loader reads from.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithConfigDir replaces the lookup of the user configuration directory.
func WithConfigDir(dir func() (string, error)) Option {
	return func(l *Loader) {
		l.configDir = dir
	}
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		Logger:    logger,
		fs:        NewOSFS(),
		configDir: os.UserConfigDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the configuration at path.
// An empty path falls back to $GLANCE_CONFIG and then to the user configuration directory.
// A missing file at the default location yields domain.DefaultConfig; a missing explicit file is an error.
func (l *Loader) Load(path string) (domain.Config, error) {
	configPath, explicit := l.resolvePath(path)
	if configPath == "" {
		return domain.DefaultConfig(), nil
	}

	if _, err := l.fs.Stat(configPath); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, err
	}

	cfg, err := l.resolve(&file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) resolvePath(path string) (resolved string, explicit bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv(domain.ConfigEnvVar); env != "" {
		return env, true
	}

	dir, err := l.configDir()
	if err != nil || dir == "" {
		return "", false
	}
	return filepath.Join(dir, "glance", domain.ConfigFileName), false
}

func (l *Loader) readAndUnmarshalYAML(path string, v any) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

// resolve overlays the file onto the defaults and validates the result.
func (l *Loader) resolve(file *File) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if budget := strings.TrimSpace(file.Cache.Budget); budget != "" {
		n, err := humanize.ParseBytes(budget)
		if err != nil || n == 0 || n > 1<<62 {
			return domain.Config{}, invalid(domain.ErrInvalidCacheBudget, "budget", budget)
		}
		cfg.Cache.Budget = int64(n)
	}

	if file.Prefetch.Enabled != nil {
		cfg.Prefetch.Enabled = *file.Prefetch.Enabled
	}
	if file.Prefetch.Workers != nil {
		workers := *file.Prefetch.Workers
		if workers < 0 {
			return domain.Config{}, invalid(domain.ErrInvalidPrefetchWorkers, "workers", workers)
		}
		if workers == 0 && cfg.Prefetch.Enabled {
			l.Logger.Warn("prefetch.workers is 0, prefetching is disabled")
			cfg.Prefetch.Enabled = false
		}
		if workers > 0 {
			cfg.Prefetch.Workers = workers
		}
	}

	if locale := strings.TrimSpace(file.Navigation.Locale); locale != "" {
		if _, err := language.Parse(locale); err != nil {
			return domain.Config{}, invalid(domain.ErrInvalidLocale, "locale", locale)
		}
		cfg.Navigation.Locale = locale
	}

	if file.Watch != nil {
		cfg.Watch = *file.Watch
	}
	if file.Log.JSON != nil {
		cfg.Log.JSON = *file.Log.JSON
	}
	cfg.Metrics.Addr = strings.TrimSpace(file.Metrics.Addr)

	if cfg.Cache.Budget < 16*1024*1024 {
		l.Logger.Warn(fmt.Sprintf("cache budget %s is small; most images will be evicted immediately",
			humanize.IBytes(uint64(cfg.Cache.Budget))))
	}

	return cfg, nil
}

// invalid wraps a validation sentinel so callers can match it with errors.Is.
func invalid(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, "invalid configuration"), key, value)
}
