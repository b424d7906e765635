package domain

import "image"

// Payload is a decoded image ready for presentation.
type Payload struct {
	Image  image.Image
	Width  int
	Height int
	Format Format
	// SizeBytes is the in-memory size of the decoded pixels, charged against the cache budget.
	SizeBytes int64
}

// LoadState is the foreground load state of a viewer session.
type LoadState uint8

const (
	// StateIdle means nothing has been opened yet.
	StateIdle LoadState = iota
	// StateLoading means a foreground load is in flight.
	StateLoading
	// StateLoaded means the current resource is decoded and displayed.
	StateLoaded
	// StateFailed means the last foreground load failed.
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}
