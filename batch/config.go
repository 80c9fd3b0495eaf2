package batch

import (
	"time"

	"github.com/kbukum/batchpipe/validation"
)

const (
	// DefaultStageDelay is the pause inserted before each stage.
	DefaultStageDelay = 500 * time.Millisecond
	// MaxRecordCount bounds how many records one run may extract.
	MaxRecordCount = 10_000_000
)

// Config parameterizes the random extractor and runner pacing.
type Config struct {
	RecordCount int `mapstructure:"record_count"`
	MinValue    int `mapstructure:"min_value"`
	MaxValue    int `mapstructure:"max_value"`
	// Seed fixes the extractor output. Zero picks a time-based seed.
	Seed       uint64        `mapstructure:"seed"`
	StageDelay time.Duration `mapstructure:"stage_delay"`
}

// DefaultConfig returns the stock pipeline parameters.
func DefaultConfig() Config {
	return Config{
		RecordCount: DefaultRecordCount,
		MinValue:    DefaultMinValue,
		MaxValue:    DefaultMaxValue,
		StageDelay:  DefaultStageDelay,
	}
}

// ApplyDefaults fills a fully zero range and count with the stock values.
// StageDelay is left as given so zero can disable pacing.
func (c *Config) ApplyDefaults() {
	if c.RecordCount == 0 && c.MinValue == 0 && c.MaxValue == 0 {
		c.RecordCount = DefaultRecordCount
		c.MinValue = DefaultMinValue
		c.MaxValue = DefaultMaxValue
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Range("record_count", c.RecordCount, 0, MaxRecordCount).
		Custom(c.MaxValue >= c.MinValue, "max_value", "must be greater than or equal to min_value").
		NonNegative("stage_delay", int64(c.StageDelay))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// NewExtractor builds the extractor described by c. A zero Seed is replaced
// with one derived from now.
func (c *Config) NewExtractor(now time.Time) *RandomExtractor {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	return NewRandomExtractor(c.RecordCount, c.MinValue, c.MaxValue, seed)
}
