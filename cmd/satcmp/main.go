// Command satcmp runs one of four SAT decision procedures against a
// CNF problem in the DIMACS format and prints a verdict with run
// statistics.
//
// Exit codes follow the SAT-competition convention: 10 when the formula
// is satisfiable, 20 when unsatisfiable, 0 on timeout, 1 on usage or
// input errors.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	satcmp "github.com/zaqq15/sat-comparison"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	input   string
	timeout int
	verbose bool
}

func (o *options) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.input, "input", "i", "", "input CNF file (DIMACS)")
	fs.IntVarP(&o.timeout, "timeout", "t", 120, "timeout in seconds")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
}

func (o *options) logger() *logrus.Logger {
	log := logrus.New()
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "satcmp",
		Short: "A family of SAT deciders for DIMACS CNF",
		Long: `satcmp decides propositional satisfiability of CNF formulas with one of
four procedures: pure resolution saturation, Davis-Putnam variable
elimination, DPLL backtracking search, or an industrial CDCL engine.

Each subcommand reads a DIMACS CNF file and prints SATISFIABLE,
UNSATISFIABLE, or TIMEOUT together with run statistics.`,
		SilenceUsage: true,
	}

	opts.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newEngineCmd(opts, "resolution", "PURE RESOLUTION SAT SOLVER",
			"Resolution steps", satcmp.SolveResolution, resolventCount),
		newEngineCmd(opts, "dp", "DAVIS-PUTNAM SAT SOLVER",
			"Recursive calls", satcmp.SolveDP, callCount),
		newEngineCmd(opts, "dpll", "DPLL SAT SOLVER",
			"Recursive calls", satcmp.SolveDPLL, callCount),
		newCDCLCmd(opts),
	)
	return root
}

func resolventCount(s satcmp.Stats) int64 { return s.Resolvents }
func callCount(s satcmp.Stats) int64      { return s.Calls }

func newEngineCmd(opts *options, use, title, stepsLabel string, engine satcmp.Engine, steps func(satcmp.Stats) int64) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: strings.ToLower(title),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return errors.New("--input is required")
			}
			log := opts.logger()

			printBanner(title)
			fmt.Printf("Reading CNF from: %s\n", opts.input)
			f, err := satcmp.ReadFile(opts.input)
			if err != nil {
				return err
			}
			warnInput(log, f)
			printFormulaStats(f)

			fmt.Printf("\nStarting %s with %ds timeout...\n", use, opts.timeout)
			mem := captureMemory()
			bud := satcmp.NewBudget(time.Duration(opts.timeout) * time.Second)
			verdict, stats := engine(f, bud, log)

			printReport(verdict, stats, stepsLabel, steps(stats), mem, opts)
			os.Exit(exitCode(verdict))
			return nil
		},
	}
}

func newCDCLCmd(opts *options) *cobra.Command {
	var (
		solvers string
		minimal bool
	)
	cmd := &cobra.Command{
		Use:   "cdcl",
		Short: "cdcl front-end over industrial solver engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger()
			if minimal {
				return runMinimal(opts, log)
			}
			if opts.input == "" {
				return errors.New("--input is required")
			}

			printBanner("CDCL SAT SOLVER FRONT-END")
			fmt.Printf("Reading CNF from: %s\n", opts.input)
			f, err := satcmp.ReadFile(opts.input)
			if err != nil {
				return err
			}
			warnInput(log, f)
			printFormulaStats(f)

			names := strings.Split(solvers, ",")
			runs := satcmp.BenchmarkSolvers(names, f, time.Duration(opts.timeout)*time.Second, log)
			printBenchmarkSummary(runs)
			if len(runs) == 0 {
				return errors.New("no successful solver runs to report")
			}
			os.Exit(exitCode(runs[0].Verdict))
			return nil
		},
	}
	cmd.Flags().StringVar(&solvers, "solvers", "g3,g4,cd,m22", "comma-separated list of solver engines")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "run a minimal self-test with a hardcoded formula")
	return cmd
}

func runMinimal(opts *options, log *logrus.Logger) error {
	fmt.Println("Running minimal self-test with hardcoded CNF formula")
	f := satcmp.MinimalTestFormula()
	fmt.Printf("Formula has %d clauses over %d variables\n", f.NumClauses(), f.NumVars())

	bud := satcmp.NewBudget(time.Duration(opts.timeout) * time.Second)
	verdict, model := satcmp.SolveCDCLModel(f, bud, log)
	fmt.Printf("Result: %s\n", verdict)
	if verdict == satcmp.Satisfiable {
		fmt.Printf("Model found: %v\n", model)
	}
	os.Exit(exitCode(verdict))
	return nil
}
