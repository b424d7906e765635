package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/app"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.trai.ch/glance/internal/engine/cache"
	"go.trai.ch/glance/internal/engine/navigator"
	"go.trai.ch/glance/internal/engine/prefetch"
	"go.uber.org/mock/gomock"
)

type harness struct {
	lister  *mocks.MockFolderLister
	decoder *mocks.MockDecoder
	logger  *mocks.MockLogger
	cache   *cache.Cache[*domain.Payload]
	session *app.Session
}

func newHarness(t *testing.T, opts ...app.SessionOption) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		lister:  mocks.NewMockFolderLister(ctrl),
		decoder: mocks.NewMockDecoder(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		cache:   cache.NewPayloadCache(1 << 20),
	}
	nav := navigator.New(h.lister)
	h.session = app.NewSession(nav, prefetch.NewLoader(h.decoder, h.cache), h.cache, h.logger, opts...)
	return h
}

func files(names ...string) []domain.FolderEntry {
	entries := make([]domain.FolderEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, domain.FolderEntry{Name: name, Size: 2048, Mode: 0o644})
	}
	return entries
}

func payload(size int64) *domain.Payload {
	return &domain.Payload{Width: 4, Height: 3, Format: domain.FormatPNG, SizeBytes: size}
}

// recordingPrefetcher remembers every navigation it was told about.
type recordingPrefetcher struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingPrefetcher) OnNavigated(current domain.ResourceDescriptor, _ *domain.NavigationSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, current.Locator)
}

func TestSession_Open(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("c.png", "a.png", "b.png"), nil)
	want := payload(10)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/b.png").Return(want, nil)

	require.NoError(t, h.session.Open(t.Context(), "/p/b.png"))

	v := h.session.View()
	assert.Equal(t, domain.StateLoaded, v.State)
	assert.Equal(t, "b.png", v.Current.Name)
	assert.Same(t, want, v.Payload)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, 3, v.Total)
	assert.NoError(t, v.Err)
	assert.Equal(t, 1, v.Stats.Count)
	assert.Equal(t, int64(10), v.Stats.TotalBytes)
}

func TestSession_NextPreviousWrap(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png", "c.png"), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/c.png").Return(payload(1), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)

	ctx := t.Context()
	require.NoError(t, h.session.Open(ctx, "/p/c.png"))

	require.NoError(t, h.session.Next(ctx))
	assert.Equal(t, "a.png", h.session.View().Current.Name, "next wraps to the first image")

	require.NoError(t, h.session.Previous(ctx))
	v := h.session.View()
	assert.Equal(t, "c.png", v.Current.Name, "previous wraps to the last image")
	assert.Equal(t, domain.StateLoaded, v.State, "revisit is served from the cache")
}

func TestSession_NavigateWithoutCurrent(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.session.Next(t.Context()), domain.ErrNoCurrentResource)
	assert.ErrorIs(t, h.session.Previous(t.Context()), domain.ErrNoCurrentResource)
	assert.NoError(t, h.session.Refresh(t.Context(), nil))

	v := h.session.View()
	assert.Equal(t, domain.StateIdle, v.State)
	assert.False(t, v.HasCurrent())
	assert.Equal(t, -1, v.Index)
}

func TestSession_DecodeFailure(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png"), nil)
	corrupted := domain.NewDecodeError(domain.DecodeCorruptedData, "/p/a.png", errors.New("unexpected EOF"))
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(nil, corrupted)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/b.png").Return(payload(1), nil)

	err := h.session.Open(t.Context(), "/p/a.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptedData)

	v := h.session.View()
	assert.Equal(t, domain.StateFailed, v.State)
	assert.Equal(t, "a.png", v.Current.Name, "failed image stays selected")
	assert.Nil(t, v.Payload)
	assert.ErrorIs(t, v.Err, domain.ErrCorruptedData)

	require.NoError(t, h.session.Next(t.Context()))
	assert.Equal(t, domain.StateLoaded, h.session.View().State)
}

func TestSession_FolderInaccessible(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().ListDirectEntries("/locked").Return(nil, errors.New("permission denied"))

	err := h.session.Open(t.Context(), "/locked/a.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFolderInaccessible)

	v := h.session.View()
	assert.Equal(t, domain.StateFailed, v.State)
	assert.Equal(t, 0, v.Total)
	assert.ErrorIs(t, h.session.Next(t.Context()), domain.ErrNoCurrentResource)
}

func TestSession_OpenFileOutsideSet(t *testing.T) {
	h := newHarness(t)
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png"), nil)
	unsupported := domain.NewDecodeError(domain.DecodeUnsupportedFormat, "/p/notes.txt", nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/notes.txt").Return(nil, unsupported)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)

	err := h.session.Open(t.Context(), "/p/notes.txt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Equal(t, -1, h.session.View().Index)

	require.NoError(t, h.session.Next(t.Context()))
	assert.Equal(t, "a.png", h.session.View().Current.Name, "navigation restarts at the first image")
}

func TestSession_StaleLoadIsDiscarded(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png", "c.png"), nil)
		h.decoder.EXPECT().Decode(gomock.Any(), "/p/b.png").Return(payload(1), nil)

		release := make(chan struct{})
		h.decoder.EXPECT().Decode(gomock.Any(), "/p/c.png").DoAndReturn(
			func(_ context.Context, _ string) (*domain.Payload, error) {
				<-release
				return payload(2), nil
			})

		ctx := context.Background()
		require.NoError(t, h.session.Open(ctx, "/p/b.png"))

		done := make(chan error, 1)
		go func() { done <- h.session.Next(ctx) }()
		synctest.Wait()
		assert.Equal(t, domain.StateLoading, h.session.View().State)
		assert.Equal(t, "c.png", h.session.View().Current.Name)

		require.NoError(t, h.session.Previous(ctx))
		assert.Equal(t, "b.png", h.session.View().Current.Name)

		close(release)
		require.NoError(t, <-done)

		v := h.session.View()
		assert.Equal(t, "b.png", v.Current.Name, "late result does not overwrite current")
		assert.Equal(t, domain.StateLoaded, v.State)
		assert.Equal(t, int64(1), v.Payload.SizeBytes)

		_, cached := h.cache.Get("/p/c.png")
		assert.True(t, cached, "the finished decode still warms the cache")
	})
}

func TestSession_RapidStepsAdvanceFromEachOther(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png", "c.png"), nil)
		h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)

		release := make(chan struct{})
		h.decoder.EXPECT().Decode(gomock.Any(), "/p/b.png").DoAndReturn(
			func(_ context.Context, _ string) (*domain.Payload, error) {
				<-release
				return payload(2), nil
			})
		h.decoder.EXPECT().Decode(gomock.Any(), "/p/c.png").Return(payload(3), nil)

		ctx := context.Background()
		require.NoError(t, h.session.Open(ctx, "/p/a.png"))

		done := make(chan error, 1)
		go func() { done <- h.session.Next(ctx) }()
		synctest.Wait()

		require.NoError(t, h.session.Next(ctx))
		close(release)
		require.NoError(t, <-done)

		v := h.session.View()
		assert.Equal(t, "c.png", v.Current.Name)
		assert.Equal(t, 2, v.Index)
		assert.Equal(t, domain.StateLoaded, v.State)
	})
}

func TestSession_TriggersPrefetchAfterLoad(t *testing.T) {
	rec := &recordingPrefetcher{}
	h := newHarness(t, app.WithPrefetcher(rec))
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png"), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/b.png").Return(nil, domain.NewDecodeError(domain.DecodeNotFound, "/p/b.png", nil))

	require.NoError(t, h.session.Open(t.Context(), "/p/a.png"))
	require.Error(t, h.session.Next(t.Context()))

	assert.Equal(t, []string{"/p/a.png"}, rec.calls, "failed loads do not prefetch")
}

func TestSession_WatchesFolderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Watch("/p").Return(nil).Times(1)

	h := newHarness(t, app.WithFolderWatcher(w))
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png"), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(payload(1), nil).Times(2)

	require.NoError(t, h.session.Open(t.Context(), "/p/a.png"))
	require.NoError(t, h.session.Next(t.Context()))
}

func TestSession_WatchFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Watch("/p").Return(errors.New("too many open files"))

	h := newHarness(t, app.WithFolderWatcher(w))
	h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "too many open files")
	})
	h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png"), nil)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)

	require.NoError(t, h.session.Open(t.Context(), "/p/a.png"))
	assert.Equal(t, domain.StateLoaded, h.session.View().State)
}

func TestSession_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		after    []string
		changed  []string
		decodes  []string
		wantName string
		wantIdx  int
	}{
		{
			name:     "unchanged current keeps payload",
			open:     "/p/b.png",
			after:    []string{"a.png", "b.png", "c.png", "d.png"},
			wantName: "b.png",
			wantIdx:  1,
		},
		{
			name:     "removed current moves to same index",
			open:     "/p/b.png",
			after:    []string{"a.png", "c.png"},
			changed:  []string{"/p/b.png"},
			decodes:  []string{"/p/c.png"},
			wantName: "c.png",
			wantIdx:  1,
		},
		{
			name:     "removed last clamps to new end",
			open:     "/p/c.png",
			after:    []string{"a.png"},
			changed:  []string{"/p/c.png", "/p/b.png"},
			decodes:  []string{"/p/a.png"},
			wantName: "a.png",
			wantIdx:  0,
		},
		{
			name:     "modified current reloads",
			open:     "/p/a.png",
			after:    []string{"a.png", "b.png", "c.png"},
			changed:  []string{"/p/a.png"},
			decodes:  []string{"/p/a.png"},
			wantName: "a.png",
			wantIdx:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			gomock.InOrder(
				h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png", "b.png", "c.png"), nil),
				h.lister.EXPECT().ListDirectEntries("/p").Return(files(tt.after...), nil),
			)
			h.decoder.EXPECT().Decode(gomock.Any(), tt.open).Return(payload(5), nil)
			for _, locator := range tt.decodes {
				h.decoder.EXPECT().Decode(gomock.Any(), locator).Return(payload(7), nil)
			}

			require.NoError(t, h.session.Open(t.Context(), tt.open))
			require.NoError(t, h.session.Refresh(t.Context(), tt.changed))

			v := h.session.View()
			assert.Equal(t, domain.StateLoaded, v.State)
			assert.Equal(t, tt.wantName, v.Current.Name)
			assert.Equal(t, tt.wantIdx, v.Index)
			assert.Equal(t, len(tt.after), v.Total)
			for _, locator := range tt.changed {
				if locator == v.Current.Locator {
					continue
				}
				_, ok := h.cache.Get(locator)
				assert.False(t, ok, "changed %s is dropped from the cache", locator)
			}
		})
	}
}

func TestSession_RefreshFolderGone(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.lister.EXPECT().ListDirectEntries("/p").Return(files("a.png"), nil),
		h.lister.EXPECT().ListDirectEntries("/p").Return(files("notes.txt"), nil),
	)
	h.decoder.EXPECT().Decode(gomock.Any(), "/p/a.png").Return(payload(1), nil)

	require.NoError(t, h.session.Open(t.Context(), "/p/a.png"))
	err := h.session.Refresh(t.Context(), []string{"/p/a.png"})
	require.ErrorIs(t, err, domain.ErrNoResourcesFound)

	v := h.session.View()
	assert.Equal(t, domain.StateFailed, v.State)
	assert.Equal(t, 0, v.Total)
}
