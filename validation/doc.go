// Package validation provides configuration validation for batchpipe.
//
// It supports struct tag validation (using the go-playground validator) and
// programmatic validation with error collection. Both report failures as an
// INVALID_INPUT AppError listing every offending field.
//
// # Struct Tag Validation
//
//	type ObservabilityConfig struct {
//	    SampleRate float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Range("pipeline.record_count", cfg.RecordCount, 0, 1_000_000)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
