package batch

import (
	"context"
	"strconv"
	"strings"

	"github.com/kbukum/batchpipe/pipeline"
)

// Sequence is an ordered list of integer records.
type Sequence []int

// Len returns the number of records.
func (s Sequence) Len() int { return len(s) }

// Clone returns a copy of s. The copy of an empty or nil sequence is empty
// and non-nil.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Summary holds the aggregate statistics of a non-empty Sequence.
type Summary struct {
	Count   int     `json:"count"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

// Field is a single key/value entry of a Summary.
type Field struct {
	Key   string
	Value string
}

// Fields returns the summary as the ordered entries count, min, max, average.
func (s Summary) Fields() []Field {
	return []Field{
		{Key: "count", Value: strconv.Itoa(s.Count)},
		{Key: "min", Value: strconv.Itoa(s.Min)},
		{Key: "max", Value: strconv.Itoa(s.Max)},
		{Key: "average", Value: FormatAverage(s.Average)},
	}
}

// FormatAverage renders v in its shortest form, always keeping a fractional
// digit: 6 -> "6.0", 113.4 -> "113.4".
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// drain runs an in-memory pipeline to completion. Sources built from slices
// or generators never fail and the background context is never canceled.
func drain[T any](p *pipeline.Pipeline[T]) []T {
	out, _ := pipeline.Collect(context.Background(), p)
	return out
}
