// Package observability provides OpenTelemetry tracing and metrics for batch
// runs.
//
// Export is opt-in. With Config.Enabled false, Setup leaves the global no-op
// providers in place and every instrument silently discards:
//
//	p, err := observability.Setup(ctx, cfg, observability.Resource{Name: "batchpipe"})
//	defer p.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("batchpipe"))
//	metrics.RecordStage(ctx, "extract", observability.StatusOK, 20, elapsed)
//
// Spans:
//
//	ctx, span := observability.Tracer(observability.TracerName).Start(ctx, "batch.extract")
//	observability.EndSpan(span, err)
package observability
