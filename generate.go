package main

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// genChunk is the unit of parallel generation. Fixed rather than
// per-CPU so a seeded run produces the same data on any machine.
const genChunk = 8192

// newRand returns the run's random handle and its effective seed. A
// zero seed draws one from OS entropy so independent runs stay
// independent.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, splitMix64(seed))), seed
}

// splitMix64 expands a seed into a second PCG stream word.
// https://github.com/lemire/testingRNG/blob/master/source/splitmix64.h
func splitMix64(seed uint64) uint64 {
	z := seed + 0x9E3779B97F4A7C15 // golden gamma
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// generate returns a fresh slice whose length is uniform in [0, 65536)
// and whose elements are uniform over all of uint64. Chunks are filled
// concurrently from streams derived off rng, which is only touched
// from the calling goroutine.
func generate(rng *rand.Rand) []uint64 {
	n := rng.IntN(1 << 16)
	vals := make([]uint64, n)
	var g errgroup.Group
	for off := 0; off < n; off += genChunk {
		chunk := vals[off:min(off+genChunk, n)]
		cr := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		g.Go(func() error {
			for i := range chunk {
				chunk[i] = cr.Uint64()
			}
			return nil
		})
	}
	_ = g.Wait()
	return vals
}
