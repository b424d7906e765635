package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/glance/internal/adapters/watcher"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

// CommandKind identifies a viewer action.
type CommandKind uint8

const (
	// CommandOpen opens Command.Locator.
	CommandOpen CommandKind = iota
	// CommandNext moves to the next resource.
	CommandNext
	// CommandPrevious moves to the previous resource.
	CommandPrevious
	// CommandRefresh rebuilds the working set, dropping Command.Paths from the cache.
	CommandRefresh
)

func (k CommandKind) String() string {
	switch k {
	case CommandOpen:
		return "open"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Command is a request sent to the Dispatcher.
type Command struct {
	Kind    CommandKind
	Locator string
	Paths   []string
}

const (
	commandBuffer = 32
	eventBuffer   = 16
)

// Dispatcher serialises viewer commands against one Session and publishes a View after each.
// Loads run on their own goroutines so a slow decode never blocks newer commands.
type Dispatcher struct {
	session  *Session
	watcher  ports.Watcher
	window   time.Duration
	commands chan Command
	events   chan View
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWatchEvents turns changes reported by w into CommandRefresh, coalesced over window.
func WithWatchEvents(w ports.Watcher, window time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.watcher = w
		d.window = window
	}
}

// NewDispatcher creates a Dispatcher for session.
func NewDispatcher(session *Session, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		session:  session,
		window:   watcher.DefaultDebounceWindow,
		commands: make(chan Command, commandBuffer),
		events:   make(chan View, eventBuffer),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send enqueues cmd. It reports false if the queue is full.
func (d *Dispatcher) Send(cmd Command) bool {
	select {
	case d.commands <- cmd:
		return true
	default:
		return false
	}
}

// Events returns the stream of views. It is closed when Run returns.
func (d *Dispatcher) Events() <-chan View {
	return d.events
}

// Run handles commands until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		close(d.events)
	}()

	if d.watcher != nil {
		if err := d.watcher.Start(ctx); err != nil {
			return err
		}
		debouncer := watcher.NewDebouncer(d.window, func(paths []string) {
			d.Send(Command{Kind: CommandRefresh, Paths: paths})
		})
		defer debouncer.Stop()
		wg.Go(func() { d.forwardWatchEvents(debouncer) })
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.commands:
			wg.Go(func() {
				err := d.handle(ctx, cmd)
				v := d.session.View()
				d.report(ctx, cmd, err, v)
				d.publish(ctx, v)
			})
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CommandOpen:
		return d.session.Open(ctx, cmd.Locator)
	case CommandNext:
		return d.session.Next(ctx)
	case CommandPrevious:
		return d.session.Previous(ctx)
	case CommandRefresh:
		return d.session.Refresh(ctx, cmd.Paths)
	default:
		return nil
	}
}

// report logs command failures the view does not already show.
func (d *Dispatcher) report(ctx context.Context, cmd Command, err error, v View) {
	if err == nil || ctx.Err() != nil || v.Err != nil {
		return
	}
	d.session.logger.Warn(fmt.Sprintf("%s: %v", cmd.Kind, err))
}

func (d *Dispatcher) publish(ctx context.Context, v View) {
	select {
	case d.events <- v:
	case <-ctx.Done():
	}
}

// forwardWatchEvents feeds changes to supported images into the debouncer.
// It returns when the watcher's event stream closes.
func (d *Dispatcher) forwardWatchEvents(debouncer *watcher.Debouncer) {
	for event := range d.watcher.Events() {
		if _, ok := domain.ParseFormat(filepath.Ext(event.Path)); !ok {
			continue
		}
		debouncer.Add(event.Path)
	}
}
