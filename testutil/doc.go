// Package testutil provides helpers for tests that assert on log output,
// spans and metrics emitted by batchpipe packages.
//
//	logs := testutil.NewLogs(t)
//	tracer, spans := testutil.NewTracer(t)
//	metrics, reader := testutil.NewMetrics(t)
//
//	r := batch.NewRunner(ex, rep,
//	    batch.WithLogger(logs.Logger),
//	    batch.WithTracer(tracer),
//	    batch.WithMetrics(metrics))
package testutil
