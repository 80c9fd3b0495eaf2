// Command batchpipe runs one pass of the batch pipeline over randomly
// generated records and prints the final report.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/batchpipe/batch"
	"github.com/kbukum/batchpipe/bootstrap"
	"github.com/kbukum/batchpipe/config"
	"github.com/kbukum/batchpipe/errors"
	"github.com/kbukum/batchpipe/observability"
	"github.com/kbukum/batchpipe/version"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(errors.ExitCodeOf(err))
	}
}

func run(ctx context.Context, out io.Writer, opts ...config.LoaderOption) error {
	start := time.Now()

	cfg, err := loadConfig(opts...)
	if err != nil {
		return errors.InvalidConfig(fmt.Sprintf("loading config: %v", err)).WithCause(err)
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	log := app.Logger
	log.Debug("Build info", version.Get().Fields())

	provider, metrics, err := instrument(ctx, cfg.Observability, observability.Resource{
		Name:        app.Name,
		Version:     app.Version,
		Environment: cfg.Environment,
	}, observability.Meter(observability.TracerName))
	if err != nil {
		return err
	}
	if provider.Enabled() {
		app.OnStop(provider.Shutdown)
	}

	runner := batch.NewRunner(
		cfg.Pipeline.NewExtractor(start),
		batch.NewConsoleReporter(out),
		batch.WithLogger(log),
		batch.WithStageDelay(cfg.Pipeline.StageDelay),
		batch.WithMetrics(metrics),
	)

	err = app.RunTask(ctx, func(ctx context.Context) error {
		_, err := runner.Run(ctx)
		return err
	})

	elapsed := strconv.FormatFloat(time.Since(start).Seconds(), 'f', -1, 64)
	log.Info(fmt.Sprintf("Total execution time: %s seconds", elapsed))
	return err
}

// instrument creates the run metrics on meter and then installs the export
// providers, so nothing is left to flush when the instruments fail.
func instrument(
	ctx context.Context,
	cfg observability.Config,
	res observability.Resource,
	meter metric.Meter,
) (*observability.Provider, *observability.Metrics, error) {
	metrics, err := observability.NewMetrics(meter)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}
	provider, err := observability.Setup(ctx, cfg, res)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}
	return provider, metrics, nil
}
