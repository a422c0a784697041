package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelRecorder records robot sends as OpenTelemetry metrics exported in Prometheus format.
// It implements robot.Recorder.
type OTelRecorder struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry

	meter        metric.Meter
	sentCounter  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewOTelRecorder creates a recorder backed by registry, or by a fresh registry when nil
func NewOTelRecorder(registry *promclient.Registry) (*OTelRecorder, error) {
	if registry == nil {
		registry = promclient.NewRegistry()
	}

	// Create Prometheus exporter
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"robot-notify",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	r := &OTelRecorder{
		meterProvider: meterProvider,
		registry:      registry,
		meter:         meter,
	}

	if err := r.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return r, nil
}

// registerInstruments creates all OpenTelemetry metric instruments
func (r *OTelRecorder) registerInstruments() error {
	var err error

	r.sentCounter, err = r.meter.Int64Counter(
		"robot.messages.sent",
		metric.WithDescription("Number of robot send attempts by message type and outcome"),
		metric.WithUnit("{messages}"),
	)
	if err != nil {
		return fmt.Errorf("creating sent counter: %w", err)
	}

	r.durationHist, err = r.meter.Float64Histogram(
		"robot.send.duration",
		metric.WithDescription("Time spent validating, signing and submitting a message"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	return nil
}

// RecordSend implements robot.Recorder
func (r *OTelRecorder) RecordSend(ctx context.Context, msgType string, outcome string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("message.type", msgType),
		attribute.String("outcome", outcome),
	)

	r.sentCounter.Add(ctx, 1, attrs)
	r.durationHist.Record(ctx, float64(d)/float64(time.Millisecond), attrs)
}

// ServeHTTP serves Prometheus-formatted metrics from the recorder registry
func (r *OTelRecorder) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (r *OTelRecorder) Shutdown(ctx context.Context) error {
	if r.meterProvider != nil {
		return r.meterProvider.Shutdown(ctx)
	}
	return nil
}
