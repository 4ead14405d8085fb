package main

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"golang.org/x/term"
)

// fallbackWidth is used when the terminal size is unavailable.
const fallbackWidth = 80

// SortByTime orders measurements slowest first, the display order of
// both the table and the graph.
func SortByTime(ms []Measurement) {
	slices.SortStableFunc(ms, func(a, b Measurement) int {
		return cmp.Compare(b.Time, a.Time)
	})
}

// PrintTable writes the ranked comparison. Every row after the first
// is compared against the next-slower row above it; the Total row sums
// all durations and compares the slowest row against the fastest.
func PrintTable(w io.Writer, ms []Measurement) {
	if len(ms) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tTime taken\ttimes faster than previous\tAbsolute time difference\tpercent of previous time\tCompared to")
	fmt.Fprintf(tw, "%s\t%v\t-\t-\t-\t-\n", ms[0].Name, ms[0].Time)
	for i := 1; i < len(ms); i++ {
		prev, cur := ms[i-1], ms[i]
		fmt.Fprintf(tw, "%s\t%v\t%.2fx\t%v\t%.2f%%\t%s\n",
			cur.Name, cur.Time,
			ratio(prev.Time, cur.Time),
			prev.Time-cur.Time,
			ratio(cur.Time, prev.Time)*100,
			prev.Name)
	}
	total := lo.SumBy(ms, func(m Measurement) time.Duration { return m.Time })
	first, last := ms[0], ms[len(ms)-1]
	fmt.Fprintf(tw, "Total\t%v\t%.2fx\t%v\t%.2f%%\t-\n",
		total, ratio(first.Time, last.Time), first.Time-last.Time,
		ratio(last.Time, first.Time)*100)
	tw.Flush()
}

// ratio divides two durations as floats, clamping to 1ns so a
// sub-resolution measurement cannot divide by zero.
func ratio(a, b time.Duration) float64 {
	return float64(max(a, 1)) / float64(max(b, 1))
}

// PrintGraph renders one bar per measurement on a log scale: bar
// length is proportional to ln(time) - ln(fastest time), scaled so the
// slowest bar fills the width remaining after the name column.
// Measurements must already be sorted slowest first.
func PrintGraph(w io.Writer, ms []Measurement, width int) {
	if len(ms) == 0 {
		return
	}
	widest := lo.MaxBy(ms, func(a, b Measurement) bool {
		return len(a.Name) > len(b.Name)
	})
	nameLen := len(widest.Name)
	avail := width - nameLen - 2
	if avail < 0 {
		avail = 0
	}
	floor := logNs(ms[len(ms)-1].Time)
	spread := logNs(ms[0].Time) - floor
	var scale float64
	if spread > 0 {
		scale = float64(avail) / spread
	}
	fmt.Fprintln(w, "\ntimes as a log graph: ")
	for _, m := range ms {
		bars := int(math.Round((logNs(m.Time) - floor) * scale))
		fmt.Fprintf(w, "%-*s: %s\n", nameLen, m.Name, strings.Repeat("*", bars))
	}
}

func logNs(d time.Duration) float64 {
	return math.Log(float64(max(d, 1)))
}

// terminalWidth returns the stdout column count, or fallbackWidth when
// stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
