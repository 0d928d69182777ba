// Command vecgrowth prints how a vector's capacity evolves while it is grown
// to a target length by different strategies.
//
// Usage:
//
//	vecgrowth [flags] [strategy ...]
//
// Without arguments it traces every known strategy.
//
// Examples:
//
//	vecgrowth push
//	vecgrowth -n 100 push insert-front
//	vecgrowth -reserve 16 push
//	vecgrowth -steps resize
//	vecgrowth -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Fishytek/Vector/container/vector"
)

type strategyEntry struct {
	name string
	desc string
	step func(v *vector.Vector[int], i int)
}

var registry = []strategyEntry{
	{"push", "PushBack one element", func(v *vector.Vector[int], i int) { v.PushBack(i) }},
	{"insert-front", "Insert at Begin()", func(v *vector.Vector[int], i int) { v.Insert(v.Begin(), i) }},
	{"insert-back", "Insert at End()", func(v *vector.Vector[int], i int) { v.Insert(v.End(), i) }},
	{"resize", "Resize to Len()+1", func(v *vector.Vector[int], _ int) { v.Resize(v.Len() + 1) }},
	{"reserve-push", "Reserve(Len()+1), then PushBack", func(v *vector.Vector[int], i int) {
		v.Reserve(v.Len() + 1)
		v.PushBack(i)
	}},
}

// sample is the vector state after one growth step.
type sample struct {
	step     int
	length   int
	capacity int
	realloc  bool
}

func main() {
	n := flag.Int("n", 32, "target number of elements")
	reserve := flag.Int("reserve", 0, "initial capacity hint")
	steps := flag.Bool("steps", false, "print every step, not only reallocations")
	list := flag.Bool("list", false, "list available strategies")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecgrowth [flags] [strategy ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the capacity progression of a vector grown to -n elements.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, traces every strategy.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecgrowth push insert-front\n")
		fmt.Fprintf(os.Stderr, "  vecgrowth -n 1000 -reserve 64 push\n")
		fmt.Fprintf(os.Stderr, "  vecgrowth -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if *n < 0 || *reserve < 0 {
		fmt.Fprintf(os.Stderr, "error: -n and -reserve must be >= 0\n")
		os.Exit(2)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching strategies\n")
		os.Exit(1)
	}

	if err := printTraces(os.Stdout, entries, *n, *reserve, *steps); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = fmt.Sprintf("%-14s %s", e.name, e.desc)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string) []strategyEntry {
	byName := make(map[string]strategyEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []strategyEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown strategy %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// trace grows a vector to n elements with e, starting from a capacity hint.
func trace(e strategyEntry, n, reserve int) []sample {
	v := vector.WithReserve[int](vector.Reserve(reserve))
	samples := make([]sample, 0, n)
	for i := range n {
		before := v.Cap()
		e.step(v, i)
		samples = append(samples, sample{
			step:     i + 1,
			length:   v.Len(),
			capacity: v.Cap(),
			realloc:  v.Cap() != before,
		})
	}
	return samples
}

func printTraces(w io.Writer, entries []strategyEntry, n, reserve int, all bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Strategy\tStep\tLen\tCap\tRealloc\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t----\t---\t---\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		reallocs := 0
		for _, s := range trace(e, n, reserve) {
			if s.realloc {
				reallocs++
			}
			if !all && !s.realloc {
				continue
			}
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%t\n", e.name, s.step, s.length, s.capacity, s.realloc); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
		if _, err := fmt.Fprintf(tw, "%s\ttotal\t\t\t%d\n", e.name, reallocs); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
