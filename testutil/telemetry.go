package testutil

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/batchpipe/observability"
)

// NewTracer returns a tracer whose ended spans are kept by the recorder.
func NewTracer(t testing.TB) (trace.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp.Tracer(t.Name()), sr
}

// MetricReader collects metrics recorded through a Metrics created by
// NewMetrics.
type MetricReader struct {
	reader *sdkmetric.ManualReader
}

// NewMetrics returns instruments backed by an in-memory reader.
func NewMetrics(t testing.TB) (*observability.Metrics, *MetricReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := observability.NewMetrics(mp.Meter(t.Name()))
	if err != nil {
		t.Fatalf("creating metrics: %v", err)
	}
	return m, &MetricReader{reader: reader}
}

// Collect returns every metric by name.
func (r *MetricReader) Collect(t testing.TB) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := r.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

// Sums totals every int64 counter across its data points.
func (r *MetricReader) Sums(t testing.TB) map[string]int64 {
	t.Helper()
	sums := make(map[string]int64)
	for name, agg := range r.Collect(t) {
		s, ok := agg.(metricdata.Sum[int64])
		if !ok {
			continue
		}
		for _, dp := range s.DataPoints {
			sums[name] += dp.Value
		}
	}
	return sums
}
