// Package telemetry bridges OpenTelemetry spans into the metrics port.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/glance/internal/adapters/decoder"
	"go.trai.ch/glance/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished decode spans to Metrics.
type Bridge struct {
	metrics ports.Metrics
}

// NewBridge returns a new Bridge.
func NewBridge(metrics ports.Metrics) *Bridge {
	return &Bridge{
		metrics: metrics,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.metrics == nil || s.Name() != decoder.SpanName {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "decode failed"
		}
		err = errors.New(desc)
	}

	b.metrics.ObserveDecode(s.EndTime().Sub(s.StartTime()), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
