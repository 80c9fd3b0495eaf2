package batch

import (
	"context"

	"github.com/kbukum/batchpipe/pipeline"
)

// Transform doubles every record, preserving length and order.
func Transform(seq Sequence) Sequence {
	return drain(pipeline.Map(pipeline.FromSlice([]int(seq)), double))
}

func double(_ context.Context, v int) (int, error) {
	return v * 2, nil
}
