package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// FromSlice creates a pipeline that reads items in order.
// The slice is read, never written.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Generate creates a pipeline yielding fn(0) .. fn(n-1).
// A negative n yields nothing.
func Generate[T any](n int, fn func(i int) T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{n: n, fn: fn}
		},
	}
}

// --- Terminals ---

// Collect runs the pipeline and returns all values as a newly allocated
// slice. An exhausted pipeline yields an empty, non-nil slice.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	result := make([]T, 0)
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	n     int
	index int
	fn    func(i int) T
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= it.n {
		var zero T
		return zero, false, nil
	}
	val := it.fn(it.index)
	it.index++
	return val, true, nil
}

func (it *generateIter[T]) Close() error { return nil }
