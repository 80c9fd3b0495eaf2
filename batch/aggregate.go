package batch

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/batchpipe/errors"
	"github.com/kbukum/batchpipe/pipeline"
)

type number interface {
	constraints.Integer | constraints.Float
}

// accumulator folds count, sum and extrema in one pass.
type accumulator[T number] struct {
	count int
	sum   float64
	min   T
	max   T
}

func (a accumulator[T]) add(v T) accumulator[T] {
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.count++
	a.sum += float64(v)
	return a
}

func (a accumulator[T]) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// Aggregate computes count, min, max and the average rounded to two
// decimals. An empty sequence returns an error matching
// errors.ErrEmptyInput.
func Aggregate(seq Sequence) (Summary, error) {
	acc := drain(pipeline.Reduce(
		pipeline.FromSlice([]int(seq)),
		accumulator[int]{},
		accumulator[int].add,
	))[0]
	if acc.count == 0 {
		return Summary{}, errors.EmptyInput(StageAggregate)
	}
	return Summary{
		Count:   acc.count,
		Min:     acc.min,
		Max:     acc.max,
		Average: round2(acc.mean()),
	}, nil
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
