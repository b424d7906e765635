package prefetch

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"golang.org/x/sync/semaphore"
)

// Stepper resolves the neighbours of a resource within a working set.
type Stepper interface {
	Next(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool)
	Previous(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool)
}

// Coordinator warms the cache for the neighbours of the current resource.
// Work runs on a bounded pool that foreground loads never wait on.
type Coordinator struct {
	loader  *Loader
	stepper Stepper
	logger  ports.Logger
	metrics ports.Metrics
	sem     *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Coordinator.
type Option func(*config)

type config struct {
	workers int
	metrics ports.Metrics
}

// WithWorkers bounds the number of concurrent background decodes.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithMetrics reports scheduled and failed prefetches to m.
func WithMetrics(m ports.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// NewCoordinator creates a Coordinator. Call Close to stop pending work.
func NewCoordinator(loader *Loader, stepper Stepper, logger ports.Logger, opts ...Option) *Coordinator {
	cfg := config{workers: domain.DefaultPrefetchWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = domain.DefaultPrefetchWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		loader:  loader,
		stepper: stepper,
		logger:  logger,
		metrics: cfg.metrics,
		sem:     semaphore.NewWeighted(int64(cfg.workers)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// OnNavigated schedules background loads for the next and previous resources
// and returns immediately. Failures are logged and dropped.
func (c *Coordinator) OnNavigated(current domain.ResourceDescriptor, within *domain.NavigationSet) {
	for _, n := range Neighbours(c.stepper, current, within) {
		if c.ctx.Err() != nil {
			return
		}
		if c.metrics != nil {
			c.metrics.PrefetchScheduled()
		}
		locator := n.Locator
		c.wg.Go(func() {
			c.warm(locator)
		})
	}
}

func (c *Coordinator) warm(locator string) {
	if err := c.sem.Acquire(c.ctx, 1); err != nil {
		return
	}
	defer c.sem.Release(1)

	if _, err := c.loader.Load(c.ctx, locator); err != nil {
		if c.ctx.Err() != nil {
			return
		}
		if c.metrics != nil {
			c.metrics.PrefetchFailed()
		}
		c.logger.Warn(fmt.Sprintf("prefetch of %s failed: %v", locator, err))
	}
}

// Wait blocks until every scheduled prefetch has finished.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Close cancels prefetches that have not started decoding and waits for the rest.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}

// Neighbours returns the next and previous resources of current, in that
// order, without duplicates and never current itself.
func Neighbours(stepper Stepper, current domain.ResourceDescriptor, within *domain.NavigationSet) []domain.ResourceDescriptor {
	out := make([]domain.ResourceDescriptor, 0, 2)
	if next, ok := stepper.Next(current, within); ok && !next.Equal(current) {
		out = append(out, next)
	}
	if prev, ok := stepper.Previous(current, within); ok && !prev.Equal(current) {
		if len(out) == 0 || !out[0].Equal(prev) {
			out = append(out, prev)
		}
	}
	return out
}
