package batch

import "github.com/kbukum/batchpipe/pipeline"

// IsValid reports whether a record is accepted: only positive values are.
func IsValid(v int) bool { return v > 0 }

// Validate returns the records of seq that satisfy IsValid, in order.
func Validate(seq Sequence) Sequence {
	return drain(pipeline.Filter(pipeline.FromSlice([]int(seq)), IsValid))
}
