package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

// Navigator builds working sets and steps through them.
type Navigator interface {
	Enumerate(locator string) (*domain.NavigationSet, error)
	EnumerateFolder(folder string) (*domain.NavigationSet, error)
	Next(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool)
	Previous(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool)
}

// PayloadLoader returns a decoded payload, consulting the cache first.
type PayloadLoader interface {
	Load(ctx context.Context, locator string) (*domain.Payload, error)
}

// Prefetcher warms the neighbours of the current resource.
type Prefetcher interface {
	OnNavigated(current domain.ResourceDescriptor, within *domain.NavigationSet)
}

// View is a snapshot of the session.
type View struct {
	State   domain.LoadState
	Current domain.ResourceDescriptor
	Payload *domain.Payload
	// Index is the zero-based position of Current in the working set, or -1.
	Index int
	Total int
	Err   error
	Stats ports.CacheStats
}

// HasCurrent reports whether a resource has been selected.
func (v View) HasCurrent() bool {
	return v.Current.Locator != ""
}

// Session owns the current resource and working set of one viewer.
// Every request takes a new generation; results of older generations are discarded.
type Session struct {
	nav      Navigator
	loader   PayloadLoader
	cache    ports.PayloadCache
	prefetch Prefetcher
	watcher  ports.Watcher
	logger   ports.Logger

	mu         sync.Mutex
	generation uint64
	set        *domain.NavigationSet
	current    domain.ResourceDescriptor
	state      domain.LoadState
	payload    *domain.Payload
	err        error
	watched    string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrefetcher enables neighbour warming after each successful load.
func WithPrefetcher(p Prefetcher) SessionOption {
	return func(s *Session) {
		s.prefetch = p
	}
}

// WithFolderWatcher points w at the folder of every committed working set.
func WithFolderWatcher(w ports.Watcher) SessionOption {
	return func(s *Session) {
		s.watcher = w
	}
}

// NewSession creates an idle session.
func NewSession(
	nav Navigator,
	loader PayloadLoader,
	cache ports.PayloadCache,
	logger ports.Logger,
	opts ...SessionOption,
) *Session {
	s := &Session{
		nav:    nav,
		loader: loader,
		cache:  cache,
		logger: logger,
		state:  domain.StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open makes locator the current resource and its folder the working set.
func (s *Session) Open(ctx context.Context, locator string) error {
	gen := s.begin()

	abs, err := filepath.Abs(locator)
	if err != nil {
		abs = filepath.Clean(locator)
	}

	set, err := s.nav.Enumerate(abs)
	if err != nil {
		target := descriptorFor(abs)
		if !s.commit(gen, func() {
			s.set = nil
			s.current = target
			s.fail(err)
		}) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to open image"), "locator", abs)
	}

	target, ok := lookup(set, abs)
	if !ok {
		target = descriptorFor(abs)
	}
	return s.load(ctx, gen, target, set)
}

// Next moves to the following resource, wrapping at the end.
func (s *Session) Next(ctx context.Context) error {
	return s.step(ctx, s.nav.Next)
}

// Previous moves to the preceding resource, wrapping at the start.
func (s *Session) Previous(ctx context.Context) error {
	return s.step(ctx, s.nav.Previous)
}

func (s *Session) step(
	ctx context.Context,
	move func(domain.ResourceDescriptor, *domain.NavigationSet) (domain.ResourceDescriptor, bool),
) error {
	s.mu.Lock()
	if s.set == nil {
		s.mu.Unlock()
		return domain.ErrNoCurrentResource
	}
	s.generation++
	gen, set := s.generation, s.set

	// The target is selected under the lock so rapid steps advance from each other.
	target, ok := move(s.current, set)
	if !ok {
		// The current resource is not part of the set, e.g. a hidden file opened directly.
		target = set.At(0)
	}
	s.current = target
	s.mu.Unlock()

	return s.load(ctx, gen, target, set)
}

// Refresh drops changed locators from the cache and rebuilds the working set.
// When the current resource disappeared, the resource now at its index becomes current.
func (s *Session) Refresh(ctx context.Context, changed []string) error {
	for _, locator := range changed {
		s.cache.Remove(locator)
	}

	s.mu.Lock()
	if s.set == nil {
		s.mu.Unlock()
		return nil
	}
	s.generation++
	gen, folder, current, state := s.generation, s.set.Folder(), s.current, s.state
	oldIndex, _ := s.set.IndexOf(current.Locator)
	s.mu.Unlock()

	set, err := s.nav.EnumerateFolder(folder)
	if err != nil {
		if !s.commit(gen, func() {
			s.set = nil
			s.fail(err)
		}) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to refresh folder"), "folder", folder)
	}

	target, ok := lookup(set, current.Locator)
	if !ok {
		target = set.At(min(max(oldIndex, 0), set.Len()-1))
	}

	if ok && state == domain.StateLoaded && !slices.Contains(changed, current.Locator) {
		if s.commit(gen, func() { s.set = set }) && s.prefetch != nil {
			s.prefetch.OnNavigated(current, set)
		}
		return nil
	}
	return s.load(ctx, gen, target, set)
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:   s.state,
		Current: s.current,
		Payload: s.payload,
		Index:   -1,
		Err:     s.err,
		Stats:   s.cache.Stats(),
	}
	if s.set != nil {
		v.Total = s.set.Len()
		if idx, ok := s.set.IndexOf(s.current.Locator); ok {
			v.Index = idx
		}
	}
	return v
}

// load selects target and decodes it. Results are dropped if a newer request started meanwhile.
func (s *Session) load(ctx context.Context, gen uint64, target domain.ResourceDescriptor, set *domain.NavigationSet) error {
	if !s.commit(gen, func() {
		s.set = set
		s.current = target
		s.state = domain.StateLoading
		s.payload = nil
		s.err = nil
	}) {
		return nil
	}
	s.watch(set.Folder())

	payload, err := s.loader.Load(ctx, target.Locator)
	if err != nil {
		if !s.commit(gen, func() { s.fail(err) }) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to open image"), "locator", target.Locator)
	}

	if !s.commit(gen, func() {
		s.state = domain.StateLoaded
		s.payload = payload
	}) {
		return nil
	}

	if s.prefetch != nil {
		s.prefetch.OnNavigated(target, set)
	}
	return nil
}

func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = domain.StateLoading
	s.err = nil
	return s.generation
}

// commit applies fn under the lock if gen is still the newest generation.
func (s *Session) commit(gen uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	fn()
	return true
}

// fail records err. Callers hold mu.
func (s *Session) fail(err error) {
	s.state = domain.StateFailed
	s.payload = nil
	s.err = err
}

func (s *Session) watch(folder string) {
	if s.watcher == nil {
		return
	}

	s.mu.Lock()
	if s.watched == folder {
		s.mu.Unlock()
		return
	}
	s.watched = folder
	s.mu.Unlock()

	if err := s.watcher.Watch(folder); err != nil {
		s.logger.Warn(fmt.Sprintf("not watching %s for changes: %v", folder, err))
	}
}

func lookup(set *domain.NavigationSet, locator string) (domain.ResourceDescriptor, bool) {
	idx, ok := set.IndexOf(locator)
	if !ok {
		return domain.ResourceDescriptor{}, false
	}
	return set.At(idx), true
}

func descriptorFor(locator string) domain.ResourceDescriptor {
	format, _ := domain.ParseFormat(filepath.Ext(locator))
	return domain.ResourceDescriptor{
		Locator: locator,
		Name:    filepath.Base(locator),
		Format:  format,
	}
}
