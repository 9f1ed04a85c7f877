package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"

	satcmp "github.com/zaqq15/sat-comparison"
)

func printBanner(title string) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Printf("│   %-38s│\n", title)
	fmt.Println("└─────────────────────────────────────────┘")
}

func warnInput(log *logrus.Logger, f *satcmp.Formula) {
	if f.EmptyClauses > 0 {
		log.Warnf("input contains %d empty clause(s); the formula is trivially unsatisfiable", f.EmptyClauses)
	}
	if f.SkippedTokens > 0 {
		log.Debugf("skipped %d non-integer token(s) in tolerant mode", f.SkippedTokens)
	}
}

func printFormulaStats(f *satcmp.Formula) {
	fmt.Println("Formula statistics:")
	if f.HasHeader {
		fmt.Printf("  • Variables: %d (header claims: %d)\n", f.NumVars(), f.DeclaredVars)
	} else {
		fmt.Printf("  • Variables: %d\n", f.NumVars())
	}
	fmt.Printf("  • Clauses: %d\n", f.NumClauses())
}

type memoryCapture struct {
	before runtime.MemStats
}

func captureMemory() *memoryCapture {
	var m memoryCapture
	runtime.ReadMemStats(&m.before)
	return &m
}

// report reads the allocation counters again and renders the growth
// since capture plus the live heap.
func (m *memoryCapture) report() string {
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	delta := after.TotalAlloc - m.before.TotalAlloc
	return fmt.Sprintf("%s (allocated), %s live heap",
		humanize.IBytes(delta), humanize.IBytes(after.HeapAlloc))
}

func verdictLine(v satcmp.Verdict) string {
	switch v {
	case satcmp.Satisfiable:
		return color.New(color.FgGreen).Sprint("✓ SATISFIABLE")
	case satcmp.Unsatisfiable:
		return color.New(color.FgRed).Sprint("✗ UNSATISFIABLE")
	case satcmp.TimedOut:
		return color.New(color.FgYellow).Sprint("⏱ TIMEOUT")
	default:
		return v.String()
	}
}

func printReport(verdict satcmp.Verdict, stats satcmp.Stats, stepsLabel string, steps int64, mem *memoryCapture, opts *options) {
	fmt.Println()
	printBanner("RESULTS")
	fmt.Printf("Status: %s\n", verdictLine(verdict))
	fmt.Printf("%s: %s\n", stepsLabel, humanize.Comma(steps))
	fmt.Printf("Time elapsed: %.2f seconds\n", stats.Elapsed.Seconds())
	fmt.Printf("Memory used: %s\n", mem.report())
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(stats))
	}
}

func printBenchmarkSummary(runs []satcmp.SolverRun) {
	fmt.Println("\nResults Summary:")
	if len(runs) == 0 {
		fmt.Println("No successful solver runs to report.")
		return
	}
	fmt.Printf("%-15s %-8s %-10s\n", "Engine", "Result", "Time (s)")
	fmt.Println("----------------------------------------")
	for _, run := range runs {
		fmt.Printf("%-15s %-8s %-10.4f\n", run.Name, run.Verdict, run.Elapsed.Seconds())
	}
}

// exitCode maps verdicts to the SAT-competition exit convention.
func exitCode(v satcmp.Verdict) int {
	switch v {
	case satcmp.Satisfiable:
		return 10
	case satcmp.Unsatisfiable:
		return 20
	default:
		return 0
	}
}
