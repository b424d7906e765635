package ports

import "go.trai.ch/glance/internal/core/domain"

// CacheStats is a point-in-time snapshot of a cache.
type CacheStats struct {
	Count      int
	TotalBytes int64
	Budget     int64
}

// PayloadCache is a byte-budgeted store of decoded payloads keyed by locator.
//
//go:generate mockgen -source=payload_cache.go -destination=mocks/mock_payload_cache.go -package=mocks
type PayloadCache interface {
	// Get returns the payload for locator and marks it most recently used.
	Get(locator string) (*domain.Payload, bool)
	// Peek returns the payload for locator without touching recency or metrics.
	Peek(locator string) (*domain.Payload, bool)
	// Put inserts or replaces the payload for locator and evicts until the budget holds.
	Put(locator string, payload *domain.Payload, sizeBytes int64)
	// Remove deletes locator if present.
	Remove(locator string)
	// Clear drops every entry.
	Clear()
	// Stats returns a consistent snapshot.
	Stats() CacheStats
}
