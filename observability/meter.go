package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/batchpipe/logger"
)

const logComponent = "observability"

// Status values attached to stage and run metrics.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// InitMeter initializes the OTLP meter provider and installs it globally.
// The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, cfg Config, res Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	r, err := newResource(res)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(r),
	)
	otel.SetMeterProvider(mp)

	logger.WithComponent(logComponent).Info("meter initialized", logger.Fields(
		"service", res.Name,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by a batch run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	runTotal      metric.Int64Counter
	runDuration   metric.Float64Histogram
	stageTotal    metric.Int64Counter
	stageDuration metric.Float64Histogram
	records       metric.Int64Counter
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("batch.run.total",
		metric.WithDescription("Total number of batch runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("batch.run.duration",
		metric.WithDescription("Duration of batch runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch.run.duration histogram: %w", err)
	}

	stageTotal, err := meter.Int64Counter("batch.stage.total",
		metric.WithDescription("Total number of executed stages"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch.stage.total counter: %w", err)
	}

	stageDuration, err := meter.Float64Histogram("batch.stage.duration",
		metric.WithDescription("Duration of stages in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch.stage.duration histogram: %w", err)
	}

	records, err := meter.Int64Counter("batch.records",
		metric.WithDescription("Records produced by each stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch.records counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by code and stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		runTotal:      runTotal,
		runDuration:   runDuration,
		stageTotal:    stageTotal,
		stageDuration: stageDuration,
		records:       records,
		errorTotal:    errorTotal,
	}, nil
}

// RecordRun records a completed run.
func (m *Metrics) RecordRun(ctx context.Context, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStatus, status)))
	m.runDuration.Record(ctx, duration.Seconds())
}

// RecordStage records one stage execution and the records it produced.
func (m *Metrics) RecordStage(ctx context.Context, stage, status string, records int, duration time.Duration) {
	if m == nil {
		return
	}
	m.stageTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrStatus, status),
	))
	m.stageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrStage, stage),
	))
	if status == StatusOK {
		m.records.Add(ctx, int64(records), metric.WithAttributes(
			attribute.String(AttrStage, stage),
		))
	}
}

// RecordError records an error by code and stage.
func (m *Metrics) RecordError(ctx context.Context, code, stage string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorCode, code),
		attribute.String(AttrStage, stage),
	))
}
