package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/glance/internal/core/ports"
)

// Setup installs a global TracerProvider that forwards spans to metrics.
// The returned function shuts the provider down.
func Setup(metrics ports.Metrics) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(metrics)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
