// Package telemetry sets up optional OTLP trace export.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// EndpointEnv enables export when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Provider owns the SDK tracer provider when export is enabled.
// A nil *Provider is valid and means tracing is disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// and installs it as the global tracer provider.
// Returns nil if the endpoint is not configured.
//
// The variable is a base URL (e.g. http://localhost:4318); the exporter reads
// it itself, appends /v1/traces and picks TLS from the scheme.
func Setup(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter for %s: %w", endpoint, err)
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	if serviceName == "" {
		serviceName = "hellotui"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	p := NewProvider(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res))
	otel.SetTracerProvider(p.provider)
	return p, nil
}

// NewProvider wraps an SDK tracer provider built from opts without touching
// the global provider.
func NewProvider(opts ...sdktrace.TracerProviderOption) *Provider {
	return &Provider{provider: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns a named tracer, falling back to the global provider when p is nil.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil {
		return otel.Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
