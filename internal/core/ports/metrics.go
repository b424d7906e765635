package ports

import "time"

// CacheObserver receives cache events. Implementations must not call back into the cache.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
	CacheEvicted(count int)
	CacheUsage(stats CacheStats)
}

// Metrics records operational measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	CacheObserver
	// PrefetchScheduled counts a neighbour handed to the background pool.
	PrefetchScheduled()
	// PrefetchFailed counts a background decode that failed.
	PrefetchFailed()
	// ObserveDecode records the duration and outcome of a decode.
	ObserveDecode(d time.Duration, err error)
}
