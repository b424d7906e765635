package ports

import (
	"context"

	"go.trai.ch/glance/internal/core/domain"
)

// Decoder turns a locator into a decoded payload.
//
//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type Decoder interface {
	// Decode reads and decodes the image at locator.
	// Failures are reported as *domain.DecodeError.
	Decode(ctx context.Context, locator string) (*domain.Payload, error)
}
