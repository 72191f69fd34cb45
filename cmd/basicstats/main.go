// Command basicstats prints descriptive statistics for the numbers in
// a file.
//
// Usage:
//
//	basicstats <filename>
//
// The file holds whitespace-separated decimal numbers. Reading stops
// at the first token that does not parse as a number; an empty data
// set is an error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-stats/sample"
	"github.com/cwbudde/algo-stats/stats/descriptive"
)

const initialCapacity = 20

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <filename>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	b, err := sample.ReadFile(path, initialCapacity)
	if err != nil {
		return err
	}
	b.Sort()

	s, err := descriptive.Calculate(b)
	if errors.Is(err, descriptive.ErrEmpty) {
		return fmt.Errorf("%s: no numeric values", path)
	}
	if err != nil {
		return err
	}

	printReport(w, s)

	return nil
}

func printReport(w io.Writer, s descriptive.Summary) {
	fmt.Fprintf(w, "Results:\n")
	fmt.Fprintf(w, "--------\n")
	fmt.Fprintf(w, "Num values: %d\n", s.Count)
	fmt.Fprintf(w, "Mean: %.3f\n", s.Mean)
	fmt.Fprintf(w, "Median: %.3f\n", s.Median)
	fmt.Fprintf(w, "Mode: %.3f\n", s.Mode)
	fmt.Fprintf(w, "Standard Deviation: %.3f\n", s.StdDev)
	fmt.Fprintf(w, "Harmonic Mean: %.3f\n", s.HarmonicMean)
	fmt.Fprintf(w, "Unused array capacity: %d\n", s.UnusedCap)
}
