package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/buildinfo/internal/core/ports"
)

// Setup installs a global tracer provider. When verbose is set, finished spans
// are reported to logger. The returned function flushes and stops the provider.
func Setup(logger ports.Logger, verbose bool) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if verbose {
		opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(logger)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
