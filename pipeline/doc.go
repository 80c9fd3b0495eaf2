// Package pipeline provides lazy, pull-based operators that the batch
// stages are assembled from.
//
// Nothing runs until a terminal (Collect) pulls values. Each operator pulls
// from the one before it on demand, one value at a time, on the caller's
// goroutine. Operators never modify the slice they were built from.
//
// # Operators
//
//   - Generate: produce n values from an index function
//   - FromSlice: read values from an existing slice
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Reduce: accumulate all values into one result
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, -2, 3})
//	kept := pipeline.Filter(src, func(n int) bool { return n > 0 })
//	doubled := pipeline.Map(kept, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	out, err := pipeline.Collect(ctx, doubled) // [2 6]
package pipeline
