// Package otel provides OpenTelemetry instrumentation: HTTP spans via
// otelhttp and the domain metric instruments. Exporter wiring is left to
// the environment; instruments are no-ops until a meter provider is set.
package otel

import (
	"context"
	"log/slog"
)

// ShutdownFunc is called to flush and shut down the telemetry provider.
type ShutdownFunc func(ctx context.Context) error

// InitTracer returns a no-op shutdown function. Exporter configuration is
// deferred to deployment tooling; span creation still works through the
// globally registered provider when one is installed.
func InitTracer(serviceName string) ShutdownFunc {
	slog.Debug("telemetry initialized", "service", serviceName)
	return func(_ context.Context) error {
		return nil
	}
}
