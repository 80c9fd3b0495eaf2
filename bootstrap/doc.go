// Package bootstrap runs a batchpipe binary through a uniform lifecycle:
// config defaults and validation, logger setup, start hooks, the task itself
// under signal-aware cancellation, and stop hooks.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    os.Exit(errors.ExitCodeOf(err))
//	}
//	app.OnStop(provider.Shutdown)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := runner.Run(ctx)
//	    return err
//	})
package bootstrap
