package intersect

import (
	"slices"

	"github.com/RoaringBitmap/roaring/roaring64"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/btree"
	"golang.org/x/tools/container/intsets"
)

// Squared scans all of small for every element of big. One value is
// emitted per matching pair, so duplicates in small multiply the
// output. O(n*m).
type Squared struct{}

func (Squared) Name() string { return "Squared" }

func (Squared) Intersect(big, small []uint64) []uint64 {
	return collect(big, func(chunk, out []uint64) []uint64 {
		for _, x := range chunk {
			for _, y := range small {
				if x == y {
					out = append(out, x)
				}
			}
		}
		return out
	})
}

// SquaredBreak is Squared with the inner scan stopping at the first
// match, bounding output to one value per element of big.
type SquaredBreak struct{}

func (SquaredBreak) Name() string { return "SquaredBreak" }

func (SquaredBreak) Intersect(big, small []uint64) []uint64 {
	return filter(big, func(x uint64) bool {
		return slices.Contains(small, x)
	})
}

// BTree builds an ordered-tree set from small and probes it with every
// element of big. O(m log m + n log m).
type BTree struct{}

func (BTree) Name() string { return "BTree" }

func (BTree) Intersect(big, small []uint64) []uint64 {
	set := btree.NewOrderedG[uint64](16)
	for _, x := range small {
		set.ReplaceOrInsert(x)
	}
	return filter(big, set.Has)
}

// Binary sorts a copy of small and binary-searches it for every
// element of big. Same complexity as BTree, better locality.
type Binary struct{}

func (Binary) Name() string { return "Binary" }

func (Binary) Intersect(big, small []uint64) []uint64 {
	sorted := slices.Clone(small)
	slices.Sort(sorted)
	return filter(big, func(x uint64) bool {
		_, ok := slices.BinarySearch(sorted, x)
		return ok
	})
}

// Hash builds a map[uint64]struct{} from small and probes it with
// every element of big. Expected O(n+m).
type Hash struct{}

func (Hash) Name() string { return "Hash" }

func (Hash) Intersect(big, small []uint64) []uint64 {
	set := make(map[uint64]struct{}, len(small))
	for _, x := range small {
		set[x] = struct{}{}
	}
	return filter(big, func(x uint64) bool {
		_, ok := set[x]
		return ok
	})
}

// MapSet is Hash behind the mapset abstraction, to price the
// indirection.
type MapSet struct{}

func (MapSet) Name() string { return "MapSet" }

func (MapSet) Intersect(big, small []uint64) []uint64 {
	set := mapset.NewThreadUnsafeSetWithSize[uint64](len(small))
	for _, x := range small {
		set.Add(x)
	}
	return filter(big, func(x uint64) bool {
		return set.Contains(x)
	})
}

// Sparse probes a sparse bitset. Values round-trip through int, a
// bijection on 64-bit words since Sparse accepts negative ints. The
// probe loop is serial: intsets documents even queries as not
// concurrency-safe.
type Sparse struct{}

func (Sparse) Name() string { return "Sparse" }

func (Sparse) Intersect(big, small []uint64) []uint64 {
	var set intsets.Sparse
	for _, x := range small {
		set.Insert(int(x))
	}
	var out []uint64
	for _, x := range big {
		if set.Has(int(x)) {
			out = append(out, x)
		}
	}
	return out
}

// Roaring probes a compressed 64-bit roaring bitmap.
type Roaring struct{}

func (Roaring) Name() string { return "Roaring" }

func (Roaring) Intersect(big, small []uint64) []uint64 {
	set := roaring64.New()
	for _, x := range small {
		set.Add(x)
	}
	return filter(big, set.Contains)
}
