package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "cricket-score-service/internal/metrics"

// TelemetryConfig selects which exporters Setup wires up.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	OTLPInsecure bool
}

// Telemetry bundles the recorder with the Prometheus scrape handler and the
// shutdown hook for the underlying meter provider.
type Telemetry struct {
	Recorder *Recorder
	Handler  http.Handler

	shutdown func(context.Context) error
}

// Shutdown flushes and stops the meter provider. Safe on a nil or
// exporter-less Telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

type otelInstruments struct {
	httpRequests     metric.Int64Counter
	httpDuration     metric.Float64Histogram
	providerAttempts metric.Int64Counter
	providerErrors   metric.Int64Counter
	providerDuration metric.Float64Histogram
}

// Setup builds the metrics pipeline. With telemetry disabled it returns a
// recorder that only keeps in-memory stats, so callers never branch.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{Recorder: NewRecorder()}, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "cricket-score-service"
	}

	registry, promReader, err := prometheusComponents()
	if err != nil {
		return nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}
	if cfg.OTLPEndpoint != "" {
		otlpReader, err := buildOTLPReader(ctx, cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	instruments, err := newOtelInstruments(provider.Meter(meterName))
	if err != nil {
		shutdownErr := provider.Shutdown(ctx)
		if shutdownErr != nil {
			return nil, fmt.Errorf("create instruments: %w (shutdown: %v)", err, shutdownErr)
		}
		return nil, err
	}

	return &Telemetry{
		Recorder: newRecorderWithInstruments(instruments),
		Handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		shutdown: provider.Shutdown,
	}, nil
}

func prometheusComponents() (*prometheus.Registry, sdkmetric.Reader, error) {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	return registry, exporter, nil
}

func buildOTLPReader(ctx context.Context, cfg TelemetryConfig) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second)), nil
}

func newOtelInstruments(meter metric.Meter) (*otelInstruments, error) {
	httpRequests, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Requests served, by method, path and status."),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_requests_total: %w", err)
	}

	httpDuration, err := meter.Float64Histogram(
		"http_request_duration_ms",
		metric.WithDescription("Request latency in milliseconds."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_request_duration_ms: %w", err)
	}

	providerAttempts, err := meter.Int64Counter(
		"provider_attempts_total",
		metric.WithDescription("Upstream fetch attempts, by provider."),
	)
	if err != nil {
		return nil, fmt.Errorf("create provider_attempts_total: %w", err)
	}

	providerErrors, err := meter.Int64Counter(
		"provider_errors_total",
		metric.WithDescription("Upstream fetch failures, by provider."),
	)
	if err != nil {
		return nil, fmt.Errorf("create provider_errors_total: %w", err)
	}

	providerDuration, err := meter.Float64Histogram(
		"provider_duration_ms",
		metric.WithDescription("Upstream fetch latency in milliseconds."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create provider_duration_ms: %w", err)
	}

	return &otelInstruments{
		httpRequests:     httpRequests,
		httpDuration:     httpDuration,
		providerAttempts: providerAttempts,
		providerErrors:   providerErrors,
		providerDuration: providerDuration,
	}, nil
}
