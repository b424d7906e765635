// Package prefetch loads payloads through the cache and warms neighbours in the background.
package prefetch

import (
	"context"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Loader resolves payloads from the cache and decodes misses. Concurrent loads
// of the same locator, foreground or background, share a single decode.
type Loader struct {
	decoder ports.Decoder
	cache   ports.PayloadCache
	group   singleflight.Group
}

// NewLoader creates a Loader.
func NewLoader(decoder ports.Decoder, cache ports.PayloadCache) *Loader {
	return &Loader{
		decoder: decoder,
		cache:   cache,
	}
}

// Load returns the payload for locator, inserting it into the cache on a miss.
// The shared decode keeps running when ctx is cancelled so other waiters still get it.
func (l *Loader) Load(ctx context.Context, locator string) (*domain.Payload, error) {
	if payload, ok := l.cache.Get(locator); ok {
		return payload, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := l.group.DoChan(locator, func() (any, error) {
		// Another flight may have filled the cache between the check above and now.
		// Peek keeps this lookup out of the hit/miss counts.
		if payload, ok := l.cache.Peek(locator); ok {
			return payload, nil
		}

		payload, err := l.decoder.Decode(detached, locator)
		if err != nil {
			return nil, err
		}

		l.cache.Put(locator, payload, payload.SizeBytes)
		return payload, nil
	})

	select {
	case <-ctx.Done():
		return nil, zerr.With(zerr.Wrap(ctx.Err(), "load abandoned"), "locator", locator)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		payload, _ := res.Val.(*domain.Payload) //nolint:errcheck // always a payload when Err is nil
		return payload, nil
	}
}
