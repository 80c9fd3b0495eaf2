package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/batchpipe/errors"
	"github.com/kbukum/batchpipe/logger"
	"github.com/kbukum/batchpipe/observability"
)

// Runner executes the stages in fixed order: extract, validate, transform,
// aggregate, report. A Runner keeps no state between runs and may be reused.
type Runner struct {
	extractor Extractor
	reporter  Reporter
	log       *logger.Logger
	delay     time.Duration
	metrics   *observability.Metrics
	tracer    trace.Tracer
	listeners []func(State)
	newRunID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for stage progress lines.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithStageDelay pauses for d before each stage. Zero disables the pause.
func WithStageDelay(d time.Duration) Option {
	return func(r *Runner) { r.delay = d }
}

// WithMetrics records stage and run metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer overrides the tracer used for run and stage spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithStateListener registers fn to be called on every state transition.
func WithStateListener(fn func(State)) Option {
	return func(r *Runner) { r.listeners = append(r.listeners, fn) }
}

// WithRunIDGenerator overrides how run IDs are minted.
func WithRunIDGenerator(fn func() string) Option {
	return func(r *Runner) {
		if fn != nil {
			r.newRunID = fn
		}
	}
}

// NewRunner creates a Runner reading from extractor and reporting to reporter.
func NewRunner(extractor Extractor, reporter Reporter, opts ...Option) *Runner {
	r := &Runner{
		extractor: extractor,
		reporter:  reporter,
		log:       logger.NewNop(),
		tracer:    observability.Tracer(observability.TracerName),
		newRunID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one pass of the pipeline and returns the reported Summary.
// The first failing stage aborts the run; its error is returned unchanged.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := r.newRunID()
	ctx = logger.ContextWithRunID(ctx, runID)
	log := r.log.WithContext(ctx)

	ctx, span := r.tracer.Start(ctx, "batch.run",
		trace.WithAttributes(attribute.String(observability.AttrRunID, runID)))
	start := time.Now()

	log.Info("Batch pipeline started")
	summary, err := r.run(ctx, log)
	elapsed := time.Since(start)
	observability.EndSpan(span, err)

	if err != nil {
		r.enter(StateFailed)
		r.metrics.RecordRun(ctx, observability.StatusError, elapsed)
		log.WithError(err).Error("Batch pipeline failed", logger.DurationFields("run", elapsed))
		return Summary{}, err
	}

	r.enter(StateCompleted)
	r.metrics.RecordRun(ctx, observability.StatusOK, elapsed)
	log.Info("Batch pipeline completed successfully")
	return summary, nil
}

func (r *Runner) run(ctx context.Context, log *logger.Logger) (Summary, error) {
	raw, err := runStage(ctx, r, log, StateExtracting, "Starting data extraction...",
		func(ctx context.Context) (Sequence, error) {
			return r.extractor.Extract(ctx), nil
		}, Sequence.Len)
	if err != nil {
		return Summary{}, err
	}
	log.Info(fmt.Sprintf("Extracted %d records", len(raw)), stageFields(StageExtract, len(raw)))

	valid, err := runStage(ctx, r, log, StateValidating, "Validating data...",
		func(context.Context) (Sequence, error) {
			return Validate(raw), nil
		}, Sequence.Len)
	if err != nil {
		return Summary{}, err
	}
	log.Info(fmt.Sprintf("Validated %d records", len(valid)), stageFields(StageValidate, len(valid)))

	transformed, err := runStage(ctx, r, log, StateTransforming, "Transforming data...",
		func(context.Context) (Sequence, error) {
			return Transform(valid), nil
		}, Sequence.Len)
	if err != nil {
		return Summary{}, err
	}
	log.Info("Data transformation completed", stageFields(StageTransform, len(transformed)))

	summary, err := runStage(ctx, r, log, StateAggregating, "Aggregating data...",
		func(context.Context) (Summary, error) {
			return Aggregate(transformed)
		}, func(s Summary) int { return s.Count })
	if err != nil {
		return Summary{}, err
	}
	log.Info("Aggregation completed", stageFields(StageAggregate, summary.Count))

	_, err = runStage(ctx, r, log, StateReporting, "Saving results...",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, r.reporter.Report(ctx, summary)
		}, func(struct{}) int { return summary.Count })
	if err != nil {
		return Summary{}, err
	}
	log.Info("Results saved successfully")
	return summary, nil
}

// runStage enters state, logs begin, waits the stage delay and runs fn
// inside a span. size reports how many records fn produced.
func runStage[O any](
	ctx context.Context,
	r *Runner,
	log *logger.Logger,
	state State,
	begin string,
	fn func(context.Context) (O, error),
	size func(O) int,
) (O, error) {
	stage := state.Stage()
	r.enter(state)

	ctx, span := r.tracer.Start(ctx, "batch."+stage,
		trace.WithAttributes(attribute.String(observability.AttrStage, stage)))
	start := time.Now()

	log.Info(begin)
	var out O
	err := r.pause(ctx, stage)
	if err == nil {
		out, err = fn(ctx)
	}

	status := observability.StatusOK
	records := 0
	if err != nil {
		status = observability.StatusError
		r.metrics.RecordError(ctx, string(errors.Wrap(err).Code), stage)
	} else {
		records = size(out)
		span.SetAttributes(attribute.Int(observability.AttrRecords, records))
	}
	r.metrics.RecordStage(ctx, stage, status, records, time.Since(start))
	observability.EndSpan(span, err)
	return out, err
}

// pause blocks for the stage delay or until ctx is done. A cancellation
// records the interrupted stage in the error details.
func (r *Runner) pause(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return canceledIn(stage, 0, err)
	}
	if r.delay <= 0 {
		return nil
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return canceledIn(stage, r.delay, ctx.Err())
	case <-t.C:
		return nil
	}
}

func canceledIn(stage string, delay time.Duration, cause error) error {
	return errors.Canceled(cause).WithDetails(map[string]any{
		"stage":       stage,
		"stage_delay": delay.String(),
	})
}

func (r *Runner) enter(s State) {
	for _, fn := range r.listeners {
		fn(s)
	}
}

func stageFields(stage string, records int) map[string]interface{} {
	return logger.Fields(logger.FieldStage, stage, logger.FieldRecords, records)
}
