package intersect

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setOf sorts and deduplicates a result so methods with different
// duplicate policies can be compared.
func setOf(vals []uint64) []uint64 {
	out := slices.Clone(vals)
	slices.Sort(out)
	return slices.Compact(out)
}

// refIntersect is the trusted reference: the set of values present in
// both slices.
func refIntersect(a, b []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(b))
	for _, x := range b {
		seen[x] = struct{}{}
	}
	var out []uint64
	for _, x := range a {
		if _, ok := seen[x]; ok {
			out = append(out, x)
		}
	}
	return setOf(out)
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name       string
		big, small []uint64
		want       []uint64
	}{
		{"Basic", []uint64{1, 2, 3, 4}, []uint64{3, 4, 5, 6}, []uint64{3, 4}},
		{"EmptyBig", nil, []uint64{1, 2, 3}, nil},
		{"EmptySmall", []uint64{1, 2, 3}, nil, nil},
		{"BothEmpty", nil, nil, nil},
		{"Disjoint", []uint64{1, 2}, []uint64{3, 4}, nil},
		{"Subset", []uint64{9, 7, 5, 3, 1}, []uint64{3, 7}, []uint64{3, 7}},
		{"MaxWord", []uint64{0, math.MaxUint64}, []uint64{math.MaxUint64}, []uint64{math.MaxUint64}},
	}
	for _, m := range Methods() {
		t.Run(m.Name(), func(t *testing.T) {
			for _, tt := range tests {
				got := setOf(m.Intersect(tt.big, tt.small))
				assert.Equal(t, tt.want, got, "%s: big=%v small=%v", tt.name, tt.big, tt.small)
			}
		})
	}
}

// A probed-side duplicate yields one emission per matching pair from
// Squared and a single emission from every other method.
func TestDuplicatePolicy(t *testing.T) {
	big := []uint64{2}
	small := []uint64{2, 2}
	assert.Equal(t, []uint64{2, 2}, Squared{}.Intersect(big, small))
	for _, m := range Methods() {
		if _, ok := m.(Squared); ok {
			continue
		}
		assert.Equal(t, []uint64{2}, m.Intersect(big, small), m.Name())
	}
}

// Driver-side duplicates are emitted once per occurrence by every
// method; only set-wise comparison is meaningful across methods.
func TestDriverDuplicates(t *testing.T) {
	big := []uint64{2, 2}
	small := []uint64{2}
	for _, m := range Methods() {
		assert.Equal(t, []uint64{2, 2}, m.Intersect(big, small), m.Name())
	}
}

func TestIntersectRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	big := make([]uint64, 4096)
	small := make([]uint64, 512)
	// Small domain to force plenty of collisions and duplicates.
	for i := range big {
		big[i] = rng.Uint64N(1024)
	}
	for i := range small {
		small[i] = rng.Uint64N(1024)
	}
	want := refIntersect(big, small)
	require.NotEmpty(t, want)
	for _, m := range Methods() {
		got := setOf(m.Intersect(big, small))
		require.Equal(t, want, got, m.Name())
		again := setOf(m.Intersect(big, small))
		assert.Equal(t, got, again, "%s: not idempotent", m.Name())
	}
}

func TestOrder(t *testing.T) {
	longer := []uint64{1, 2, 3}
	shorter := []uint64{4, 5}
	big, small := Order(longer, shorter)
	assert.Equal(t, longer, big)
	assert.Equal(t, shorter, small)
	big, small = Order(shorter, longer)
	assert.Equal(t, longer, big)
	assert.Equal(t, shorter, small)
}

// Auto must produce the same set regardless of argument order.
func TestAuto(t *testing.T) {
	a := []uint64{1, 2, 3, 4}
	b := []uint64{3, 4, 5, 6, 7}
	for _, m := range Methods() {
		assert.Equal(t, []uint64{3, 4}, setOf(Auto(m, a, b)), m.Name())
		assert.Equal(t, []uint64{3, 4}, setOf(Auto(m, b, a)), m.Name())
	}
}

var benchSink []uint64

func benchmarkMethod(b *testing.B, m Method) {
	rng := rand.New(rand.NewPCG(1, 2))
	big := make([]uint64, 8192)
	small := make([]uint64, 1024)
	for i := range big {
		big[i] = rng.Uint64N(16384)
	}
	for i := range small {
		small[i] = rng.Uint64N(16384)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.Intersect(big, small)
	}
}

func BenchmarkSquared(b *testing.B)      { benchmarkMethod(b, Squared{}) }
func BenchmarkSquaredBreak(b *testing.B) { benchmarkMethod(b, SquaredBreak{}) }
func BenchmarkBTree(b *testing.B)        { benchmarkMethod(b, BTree{}) }
func BenchmarkBinary(b *testing.B)       { benchmarkMethod(b, Binary{}) }
func BenchmarkSparse(b *testing.B)       { benchmarkMethod(b, Sparse{}) }
func BenchmarkRoaring(b *testing.B)      { benchmarkMethod(b, Roaring{}) }
func BenchmarkMapSet(b *testing.B)       { benchmarkMethod(b, MapSet{}) }
func BenchmarkHash(b *testing.B)         { benchmarkMethod(b, Hash{}) }
