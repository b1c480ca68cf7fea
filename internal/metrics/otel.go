package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// DefaultServiceName names the meter and resource when none is configured.
const DefaultServiceName = "sports-hub-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	opts, promHandler, err := meterOptions(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	return newRecorder(otelInst), promHandler, provider.Shutdown, nil
}

// meterOptions assembles the Prometheus reader (always), the OTLP reader (when an
// endpoint is set) and the service resource.
func meterOptions(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Option, http.Handler, error) {
	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, err
	}
	return append(opts, sdkmetric.WithResource(res)), promHandler, nil
}

const otlpExportInterval = 15 * time.Second

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(otlpExportInterval)), nil
}

type otelInstruments struct {
	ctx context.Context

	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram

	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram

	aggregations       metric.Int64Counter
	fallbacks          metric.Int64Counter
	aggregatedEvents   metric.Int64Histogram
	aggregationLatency metric.Float64Histogram

	cacheEvents metric.Int64Counter

	reloadCycles    metric.Int64Counter
	reloadErrors    metric.Int64Counter
	reloadLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// instrumentBuilder keeps the first creation error so newOtelInstruments reads as a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if b.err == nil {
		b.err = err
	}
	return c
}

func (b *instrumentBuilder) latency(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("ms"))
	if b.err == nil {
		b.err = err
	}
	return h
}

func (b *instrumentBuilder) sizes(name, desc string) metric.Int64Histogram {
	h, err := b.meter.Int64Histogram(name, metric.WithDescription(desc), metric.WithUnit("{event}"))
	if b.err == nil {
		b.err = err
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(DefaultServiceName)}
	inst := &otelInstruments{
		ctx: context.Background(),

		requests:         b.counter("http_requests_total", "HTTP requests served, by route pattern and status."),
		requestLatencyMs: b.latency("http_request_duration_ms", "HTTP request latency."),

		providerAttempts:  b.counter("provider_attempts_total", "League adapter fetches."),
		providerErrors:    b.counter("provider_errors_total", "League adapter fetches that were absorbed as empty."),
		providerLatencyMs: b.latency("provider_duration_ms", "League adapter fetch latency."),

		aggregations:       b.counter("aggregation_runs_total", "Aggregation passes."),
		fallbacks:          b.counter("aggregation_fallbacks_total", "Aggregation passes that used the fallback fixture."),
		aggregatedEvents:   b.sizes("aggregation_events", "Events in the canonical list after a pass."),
		aggregationLatency: b.latency("aggregation_duration_ms", "Aggregation pass latency."),

		cacheEvents: b.counter("offline_cache_events_total", "Offline cache outcomes, by request origin and outcome."),

		reloadCycles:    b.counter("reload_cycles_total", "Event list reloads."),
		reloadErrors:    b.counter("reload_errors_total", "Event list reloads that failed and kept the previous list."),
		reloadLatencyMs: b.latency("reload_cycle_duration_ms", "Event list reload latency."),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, millis(duration), attrs...)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, millis(duration), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordAggregation(duration time.Duration, count int, fallback bool) {
	if o == nil {
		return
	}
	o.recordCounter(o.aggregations, 1)
	o.recordHistogram(o.aggregationLatency, millis(duration))
	o.aggregatedEvents.Record(o.ctx, int64(count))
	if fallback {
		o.recordCounter(o.fallbacks, 1)
	}
}

func (o *otelInstruments) recordCache(origin, outcome string) {
	if o == nil {
		return
	}
	o.recordCounter(o.cacheEvents, 1,
		attribute.String(AttrOrigin, origin),
		attribute.String(AttrOutcome, outcome),
	)
}

func (o *otelInstruments) recordReload(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.reloadCycles, 1)
	o.recordHistogram(o.reloadLatencyMs, millis(duration))
	if err != nil {
		o.recordCounter(o.reloadErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
