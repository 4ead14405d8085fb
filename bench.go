package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/charlievieth/isectbench/intersect"
)

// ErrClock reports a non-monotonic delta from the timing source.
var ErrClock = errors.New("monotonic clock reported a negative delta")

// A Measurement is one timed execution of one intersection method.
type Measurement struct {
	Name   string
	Time   time.Duration
	Result []uint64
}

// Measure runs m once against (big, small) and records the wall-clock
// cost. The measurement is named after the method plus suffix.
func Measure(m intersect.Method, big, small []uint64, suffix string) (Measurement, error) {
	start := time.Now()
	result := m.Intersect(big, small)
	elapsed := time.Since(start)
	if elapsed < 0 {
		return Measurement{}, fmt.Errorf("%s%s: %w", m.Name(), suffix, ErrClock)
	}
	return Measurement{Name: m.Name() + suffix, Time: elapsed, Result: result}, nil
}

// Run measures every method twice: once with the longer input driving
// and once with the roles deliberately swapped. Measurements run
// concurrently over the shared read-only inputs. A measurement whose
// clock misbehaves is logged and dropped, never retried, since a
// retried timing would not be comparable to the rest.
func Run(methods []intersect.Method, a, b []uint64) []Measurement {
	big, small := intersect.Order(a, b)
	slots := make([]*Measurement, 2*len(methods))
	var g errgroup.Group
	for i, m := range methods {
		measure := func(slot int, big, small []uint64, suffix string) func() error {
			return func() error {
				mm, err := Measure(m, big, small, suffix)
				if err != nil {
					zap.L().Warn("dropping measurement", zap.Error(err))
					return nil
				}
				slots[slot] = &mm
				return nil
			}
		}
		g.Go(measure(2*i, big, small, ""))
		g.Go(measure(2*i+1, small, big, " switched order"))
	}
	_ = g.Wait() // workers report through slots, never through errors
	out := make([]Measurement, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// CompareMode selects how Equal canonicalizes results before
// comparing them.
type CompareMode int

const (
	// CompareSet treats results as sets: sorted, duplicates removed.
	// Every method agrees under this mode.
	CompareSet CompareMode = iota
	// CompareMultiset keeps duplicates. Squared emits one value per
	// matching pair, so this mode reports disagreement whenever the
	// probed side repeats a matching value.
	CompareMultiset
)

func (m CompareMode) String() string {
	switch m {
	case CompareSet:
		return "set"
	case CompareMultiset:
		return "multiset"
	}
	return fmt.Sprintf("CompareMode(%d)", int(m))
}

// ParseCompareMode maps a --compare flag value to its mode.
func ParseCompareMode(s string) (CompareMode, error) {
	switch s {
	case "set":
		return CompareSet, nil
	case "multiset":
		return CompareMultiset, nil
	}
	return 0, fmt.Errorf("invalid compare mode: %q", s)
}

// Equal reports whether every measurement produced the same result
// under the given comparison mode. Equality is transitive, so
// comparing adjacent pairs covers the whole list.
func Equal(ms []Measurement, mode CompareMode) bool {
	if len(ms) < 2 {
		return true
	}
	prev := canonical(ms[0].Result, mode)
	for _, m := range ms[1:] {
		cur := canonical(m.Result, mode)
		if !slices.Equal(prev, cur) {
			return false
		}
		prev = cur
	}
	return true
}

func canonical(result []uint64, mode CompareMode) []uint64 {
	out := slices.Clone(result)
	slices.Sort(out)
	if mode == CompareSet {
		out = slices.Compact(out)
	}
	return out
}
