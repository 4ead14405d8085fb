// Command isectbench benchmarks several methods of intersecting two
// unsorted integer slices against randomly generated input, checks
// that they agree, and prints a ranked comparison with a log-scale
// bar graph.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/charlievieth/isectbench/intersect"
)

func init() {
	var config zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}
	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(log)
}

func main() {
	seedFlag := pflag.Uint64("seed", 0, "random seed (0 picks one from OS entropy)")
	compare := pflag.String("compare", "set", `result comparison mode: "set" or "multiset"`)
	pflag.Parse()

	mode, err := ParseCompareMode(*compare)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		pflag.Usage()
		os.Exit(1)
	}

	rng, seed := newRand(*seedFlag)
	zap.L().Debug("seeded rng", zap.Uint64("seed", seed))

	start := time.Now()
	a := generate(rng)
	b := generate(rng)
	fmt.Printf("generating test data took %v\n", time.Since(start))
	fmt.Printf("the arrays have the sizes %d and %d\n\n", len(a), len(b))

	ms := Run(intersect.Methods(), a, b)
	SortByTime(ms)

	PrintTable(os.Stdout, ms)
	PrintGraph(os.Stdout, ms, terminalWidth())

	equal := Equal(ms, mode)
	verdict := color.New(color.FgGreen)
	if !equal {
		verdict = color.New(color.FgRed)
	}
	fmt.Print("\nall values are equal: ")
	verdict.Printf("%t\n", equal)
}
