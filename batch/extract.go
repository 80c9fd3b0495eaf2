package batch

import (
	"context"
	"math/rand/v2"

	"github.com/kbukum/batchpipe/pipeline"
)

// Default extraction parameters.
const (
	DefaultRecordCount = 20
	DefaultMinValue    = 10
	DefaultMaxValue    = 100
)

// Extractor produces the raw record sequence of a run.
type Extractor interface {
	Extract(ctx context.Context) Sequence
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context) Sequence

// Extract calls f(ctx).
func (f ExtractorFunc) Extract(ctx context.Context) Sequence { return f(ctx) }

// StaticExtractor yields a fixed sequence. Each call returns a fresh copy.
type StaticExtractor Sequence

// Extract returns a copy of the fixed sequence.
func (s StaticExtractor) Extract(_ context.Context) Sequence {
	return Sequence(s).Clone()
}

// RandomExtractor yields Count values drawn uniformly from [Min, Max].
// It is not safe for concurrent use when Rand is set.
type RandomExtractor struct {
	Count int
	Min   int
	Max   int
	// Rand is the source of randomness. When nil, the process-wide
	// generator is used.
	Rand *rand.Rand
}

// NewRandomExtractor returns an extractor whose output is fully determined
// by seed.
func NewRandomExtractor(count, minValue, maxValue int, seed uint64) *RandomExtractor {
	return &RandomExtractor{
		Count: count,
		Min:   minValue,
		Max:   maxValue,
		Rand:  rand.New(rand.NewPCG(seed, seed)),
	}
}

// Extract draws Count values. Bounds given in reverse order are swapped.
// The full int range is supported.
func (e *RandomExtractor) Extract(_ context.Context) Sequence {
	lo, hi := e.Min, e.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	// width wraps to zero when the range spans all of int.
	width := uint64(hi) - uint64(lo) + 1
	return drain(pipeline.Generate(e.Count, func(int) int {
		return int(uint64(lo) + e.offset(width))
	}))
}

// offset returns a value in [0, width), or any uint64 when width is zero.
func (e *RandomExtractor) offset(width uint64) uint64 {
	if e.Rand == nil {
		if width == 0 {
			return rand.Uint64()
		}
		return rand.Uint64N(width)
	}
	if width == 0 {
		return e.Rand.Uint64()
	}
	return e.Rand.Uint64N(width)
}
