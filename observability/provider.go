package observability

import (
	"context"
	stderrors "errors"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the meter and tracer providers created by Setup.
type Provider struct {
	meter  *sdkmetric.MeterProvider
	tracer *sdktrace.TracerProvider
}

// Setup initializes metric and trace export when cfg.Enabled is set.
// A disabled config returns a Provider whose Shutdown is a no-op.
func Setup(ctx context.Context, cfg Config, res Resource) (*Provider, error) {
	p := &Provider{}
	if !cfg.Enabled {
		return p, nil
	}

	mp, err := InitMeter(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	p.meter = mp

	tp, err := InitTracer(ctx, cfg, res)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}
	p.tracer = tp
	return p, nil
}

// Enabled reports whether export providers are installed.
func (p *Provider) Enabled() bool {
	return p != nil && p.meter != nil
}

// Shutdown flushes and stops the installed providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.tracer != nil {
		errs = append(errs, p.tracer.Shutdown(ctx))
	}
	if p.meter != nil {
		errs = append(errs, p.meter.Shutdown(ctx))
	}
	return stderrors.Join(errs...)
}
