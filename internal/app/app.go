// Package app implements the application layer for glance.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/glance/internal/adapters/detector"
	"go.trai.ch/glance/internal/adapters/metrics"
	"go.trai.ch/glance/internal/adapters/telemetry"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/adapters/watcher"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/engine/cache"
	"go.trai.ch/glance/internal/engine/navigator"
	"go.trai.ch/glance/internal/engine/prefetch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.FolderLister
	decoder      ports.Decoder
	logger       ports.Logger
	metrics      *metrics.Metrics
	watcher      ports.Watcher
	teaOptions   []tea.ProgramOption
	mode         *detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.FolderLister,
	decoder ports.Decoder,
	log ports.Logger,
	m *metrics.Metrics,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		decoder:      decoder,
		logger:       log,
		metrics:      m,
		watcher:      watcher,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutputMode overrides environment detection for the view command.
func (a *App) WithOutputMode(mode detector.OutputMode) *App {
	a.mode = &mode
	return a
}

// Options are the settings shared by every command.
type Options struct {
	ConfigPath  string
	LogJSON     bool
	MetricsAddr string
}

// ViewOptions configuration for the View method.
type ViewOptions struct {
	Options
	// OutputMode is one of "auto", "tui", "linear" or "plain".
	OutputMode string
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// engine is the per-command wiring of the core components.
type engine struct {
	cfg         domain.Config
	cache       *cache.Cache[*domain.Payload]
	nav         *navigator.Navigator
	loader      *prefetch.Loader
	coordinator *prefetch.Coordinator
}

// prefetcher returns the coordinator, or nil when prefetching is disabled.
func (e *engine) prefetcher() Prefetcher {
	if e.coordinator == nil {
		return nil
	}
	return e.coordinator
}

// start loads the configuration and builds the engine. The returned function releases it.
func (a *App) start(ctx context.Context, opts Options) (*engine, func(), error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.LogJSON {
		cfg.Log.JSON = true
	}
	if opts.MetricsAddr != "" {
		cfg.Metrics.Addr = opts.MetricsAddr
	}

	if cfg.Log.JSON {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	locale := language.Und
	if cfg.Navigation.Locale != "" {
		// The loader has already validated the tag.
		locale = language.Make(cfg.Navigation.Locale)
	}

	shutdownTracing := telemetry.Setup(a.metrics)

	serveCtx, stopServe := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if cfg.Metrics.Addr != "" {
		wg.Go(func() {
			if err := a.metrics.Serve(serveCtx, cfg.Metrics.Addr); err != nil {
				a.logger.Warn(fmt.Sprintf("metrics endpoint stopped: %v", err))
			}
		})
	}

	e := &engine{
		cfg:   cfg,
		cache: cache.NewPayloadCache(cfg.Cache.Budget, cache.WithObserver(a.metrics)),
		nav:   navigator.New(a.lister, navigator.WithLocale(locale)),
	}
	e.loader = prefetch.NewLoader(a.decoder, e.cache)
	if cfg.Prefetch.Enabled {
		e.coordinator = prefetch.NewCoordinator(e.loader, e.nav, a.logger,
			prefetch.WithWorkers(cfg.Prefetch.Workers),
			prefetch.WithMetrics(a.metrics),
		)
	}

	release := func() {
		if e.coordinator != nil {
			e.coordinator.Close()
		}
		stopServe()
		wg.Wait()
		_ = shutdownTracing(context.WithoutCancel(ctx))
	}
	return e, release, nil
}

// View opens path and shows it, interactively when stdout is a terminal.
func (a *App) View(ctx context.Context, path string, w io.Writer, opts ViewOptions) error {
	e, release, err := a.start(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer release()

	target, err := resolveTarget(e.nav, path)
	if err != nil {
		return err
	}

	sessionOpts := []SessionOption{WithPrefetcher(e.prefetcher())}
	mode := a.outputMode(opts.OutputMode)
	watch := e.cfg.Watch && mode == detector.ModeTUI && a.watcher != nil
	if watch {
		sessionOpts = append(sessionOpts, WithFolderWatcher(a.watcher))
	}
	session := NewSession(e.nav, e.loader, e.cache, a.logger, sessionOpts...)

	if mode != detector.ModeTUI {
		if err := session.Open(ctx, target); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, tui.InfoLine(toFrame(session.View())))
		return err
	}

	var dispatcherOpts []DispatcherOption
	if watch {
		defer func() { _ = a.watcher.Stop() }()
		dispatcherOpts = append(dispatcherOpts, WithWatchEvents(a.watcher, watcher.DefaultDebounceWindow))
	}
	return a.runViewer(ctx, NewDispatcher(session, dispatcherOpts...), target)
}

// runViewer runs the dispatcher and the TUI until the user quits.
func (a *App) runViewer(ctx context.Context, dispatcher *Dispatcher, target string) error {
	model := tui.NewModel(func(intent tui.Intent) {
		dispatcher.Send(commandFor(intent))
	})
	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
	renderer := tui.NewRenderer(model, teaOpts...)

	g, ctx := errgroup.WithContext(ctx)
	viewerCtx, stopViewer := context.WithCancel(ctx)

	g.Go(func() error {
		defer stopViewer()
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		err := renderer.Wait()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		return dispatcher.Run(viewerCtx)
	})

	g.Go(func() error {
		for v := range dispatcher.Events() {
			renderer.Show(toFrame(v))
		}
		return nil
	})

	dispatcher.Send(Command{Kind: CommandOpen, Locator: target})
	return g.Wait()
}

func (a *App) outputMode(flag string) detector.OutputMode {
	if a.mode != nil {
		return *a.mode
	}
	return detector.ResolveMode(detector.DetectEnvironment(), flag)
}

// resolveTarget returns the image to open for path. A folder opens its first image.
func resolveTarget(nav *navigator.Navigator, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		// Missing files are reported by the decoder with the right kind.
		return path, nil
	}

	set, err := nav.EnumerateFolder(path)
	if err != nil {
		return "", err
	}
	return set.At(0).Locator, nil
}

func commandFor(intent tui.Intent) Command {
	switch intent {
	case tui.IntentPrevious:
		return Command{Kind: CommandPrevious}
	case tui.IntentRefresh:
		return Command{Kind: CommandRefresh}
	default:
		return Command{Kind: CommandNext}
	}
}

func toFrame(v View) tui.Frame {
	return tui.Frame{
		State:   v.State,
		Current: v.Current,
		Payload: v.Payload,
		Index:   v.Index,
		Total:   v.Total,
		Err:     v.Err,
		Stats:   v.Stats,
	}
}
