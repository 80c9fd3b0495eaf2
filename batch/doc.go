// Package batch implements a five-stage sequential batch pipeline:
// extract, validate, transform, aggregate and report.
//
// Stages are pure functions over Sequence values, built on the pull-based
// operators of package pipeline. A Runner sequences them, logs each stage
// boundary, and exposes the current State to listeners:
//
//	r := batch.NewRunner(
//		batch.NewRandomExtractor(20, 10, 100, seed),
//		batch.NewConsoleReporter(os.Stdout),
//		batch.WithLogger(log),
//		batch.WithStageDelay(500*time.Millisecond),
//	)
//	summary, err := r.Run(ctx)
//
// An empty sequence reaching the aggregate stage fails the run with an error
// matching errors.ErrEmptyInput; the reporter is not called.
package batch
