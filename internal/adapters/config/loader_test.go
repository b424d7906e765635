package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/config"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const root = "/home/user/.config"

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	t.Setenv(domain.ConfigEnvVar, "")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	loader := config.NewLoader(mockLogger,
		config.WithFileSystem(config.NewMapFSAdapter(root, files)),
		config.WithConfigDir(func() (string, error) { return root, nil }),
	)
	return loader, mockLogger
}

func defaultFile(content string) fstest.MapFS {
	return fstest.MapFS{
		"glance/" + domain.ConfigFileName: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestLoader_MissingDefaultFileYieldsDefaults(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Equal(t, int64(500*1024*1024), cfg.Cache.Budget)
}

func TestLoader_NoConfigDir(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl),
		config.WithConfigDir(func() (string, error) { return "", errors.New("$HOME is not defined") }),
	)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_FullFile(t *testing.T) {
	loader, _ := newLoader(t, defaultFile(`
cache:
  budget: 1GiB
prefetch:
  enabled: true
  workers: 4
navigation:
  locale: de-DE
watch: false
log:
  json: true
metrics:
  addr: ":9090"
`))

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(1<<30), cfg.Cache.Budget)
	assert.True(t, cfg.Prefetch.Enabled)
	assert.Equal(t, 4, cfg.Prefetch.Workers)
	assert.Equal(t, "de-DE", cfg.Navigation.Locale)
	assert.False(t, cfg.Watch)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	loader, _ := newLoader(t, defaultFile("log:\n  json: true\n"))

	cfg, err := loader.Load("")
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Log.JSON = true
	assert.Equal(t, want, cfg)
}

func TestLoader_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t, defaultFile(""))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_ZeroWorkersDisablesPrefetch(t *testing.T) {
	loader, mockLogger := newLoader(t, defaultFile("prefetch:\n  workers: 0\n"))
	mockLogger.EXPECT().Warn(gomock.Any())

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Prefetch.Enabled)
}

func TestLoader_SmallBudgetWarns(t *testing.T) {
	loader, mockLogger := newLoader(t, defaultFile("cache:\n  budget: 1MB\n"))
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "977 KiB")
	})

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(1000*1000), cfg.Cache.Budget)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "cache: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "cahce:\n  budget: 1GB\n", wantErr: domain.ErrConfigParseFailed},
		{name: "bad budget", content: "cache:\n  budget: lots\n", wantErr: domain.ErrInvalidCacheBudget},
		{name: "zero budget", content: "cache:\n  budget: \"0\"\n", wantErr: domain.ErrInvalidCacheBudget},
		{name: "negative workers", content: "prefetch:\n  workers: -1\n", wantErr: domain.ErrInvalidPrefetchWorkers},
		{name: "bad locale", content: "navigation:\n  locale: \"not a tag!\"\n", wantErr: domain.ErrInvalidLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, defaultFile(tt.content))

			_, err := loader.Load("")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_ValidationErrorsMatchSentinel(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		key     string
		value   any
	}{
		{name: "budget", content: "cache:\n  budget: lots\n", wantErr: domain.ErrInvalidCacheBudget, key: "budget", value: "lots"},
		{name: "workers", content: "prefetch:\n  workers: -3\n", wantErr: domain.ErrInvalidPrefetchWorkers, key: "workers", value: -3},
		{name: "locale", content: "navigation:\n  locale: \"not a tag!\"\n", wantErr: domain.ErrInvalidLocale, key: "locale", value: "not a tag!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, defaultFile(tt.content))

			_, err := loader.Load("")
			require.ErrorIs(t, err, tt.wantErr)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.value, zErr.Metadata()[tt.key])
		})
	}
}

func TestLoader_ExplicitPath(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"custom.yaml": &fstest.MapFile{Data: []byte("watch: false\n")},
	})

	cfg, err := loader.Load(filepath.Join(root, "custom.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.Watch)
}

func TestLoader_ExplicitMissingPathFails(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	_, err := loader.Load(filepath.Join(root, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_EnvVar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  addr: 127.0.0.1:2112\n"), 0o600))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	t.Setenv(domain.ConfigEnvVar, path)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2112", cfg.Metrics.Addr)
}
