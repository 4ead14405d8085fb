// Package intersect implements several interchangeable methods of
// computing the intersection of two unsorted integer slices.
package intersect

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Method is one named way of intersecting two unsorted integer slices.
//
// Intersect trusts the caller's designation of big as the driver
// (iterated) side and small as the probed side; callers that want the
// roles assigned by length should use Auto. Implementations are
// stateless and only read their inputs, so a Method may be invoked
// from multiple goroutines at once.
type Method interface {
	Name() string
	Intersect(big, small []uint64) []uint64
}

// Methods returns one instance of every intersection method.
func Methods() []Method {
	return []Method{
		Squared{},
		SquaredBreak{},
		BTree{},
		Binary{},
		Sparse{},
		Roaring{},
		MapSet{},
		Hash{},
	}
}

// Order designates the longer slice as the driver ("big") side.
func Order(a, b []uint64) (big, small []uint64) {
	if len(a) >= len(b) {
		return a, b
	}
	return b, a
}

// Auto runs m with the driver and probed roles assigned by length.
func Auto(m Method, a, b []uint64) []uint64 {
	big, small := Order(a, b)
	return m.Intersect(big, small)
}

// collect splits big into one contiguous chunk per CPU, runs scan on
// each chunk concurrently, and concatenates the per-chunk matches.
// Chunks share nothing but the read-only inputs, so the only
// synchronization is the final join.
func collect(big []uint64, scan func(chunk, out []uint64) []uint64) []uint64 {
	procs := runtime.GOMAXPROCS(0)
	if procs > len(big) {
		procs = len(big)
	}
	if procs <= 1 {
		return scan(big, nil)
	}
	found := make([][]uint64, procs)
	size := (len(big) + procs - 1) / procs
	var g errgroup.Group
	for i := 0; i < procs; i++ {
		start := i * size
		end := min(start+size, len(big))
		g.Go(func() error {
			found[i] = scan(big[start:end], nil)
			return nil
		})
	}
	_ = g.Wait() // scan funcs never error
	out := found[0]
	for _, matches := range found[1:] {
		out = append(out, matches...)
	}
	return out
}

// filter returns the elements of big for which keep reports true,
// scanning chunks of big in parallel.
func filter(big []uint64, keep func(uint64) bool) []uint64 {
	return collect(big, func(chunk, out []uint64) []uint64 {
		for _, x := range chunk {
			if keep(x) {
				out = append(out, x)
			}
		}
		return out
	})
}
