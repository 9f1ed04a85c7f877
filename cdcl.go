package satcmp

import (
	"sort"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
)

// solverBackends maps the engine names the historical front-end accepts
// to the in-process backend serving them. They all resolve to gini;
// the names are kept so existing invocations keep working.
var solverBackends = map[string]string{
	"g3":  "gini (glucose3 slot)",
	"g4":  "gini (glucose4 slot)",
	"cd":  "gini (cadical slot)",
	"m22": "gini (maplesat slot)",
}

// SolveCDCL delegates the decision to the gini CDCL engine, giving it
// whatever remains of the budget. Input empty clauses are handled
// before the handoff since external engines are not obliged to accept
// them.
func SolveCDCL(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, Stats) {
	log = orDiscard(log)
	var stats Stats
	v, _ := solveGini(f, bud.Remaining(), log)
	stats.Elapsed = bud.Elapsed()
	return v, stats
}

// SolveCDCLModel is SolveCDCL plus the satisfying assignment, reported
// in DIMACS literal form sorted by variable. The model is nil unless
// the verdict is Satisfiable.
func SolveCDCLModel(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, []int) {
	return solveGini(f, bud.Remaining(), orDiscard(log))
}

func solveGini(f *Formula, remaining time.Duration, log *logrus.Logger) (Verdict, []int) {
	if f.HasEmptyClause() {
		log.Debug("input contains the empty clause; skipping solver handoff")
		return Unsatisfiable, nil
	}
	if remaining <= 0 {
		return TimedOut, nil
	}

	g := gini.New()
	for _, c := range f.Clauses {
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}

	switch g.Try(remaining) {
	case 1:
		vars := make([]int, 0, len(f.Vars))
		for v := range f.Vars {
			vars = append(vars, v)
		}
		sort.Ints(vars)
		model := make([]int, 0, len(vars))
		for _, v := range vars {
			if g.Value(z.Dimacs2Lit(v)) {
				model = append(model, v)
			} else {
				model = append(model, -v)
			}
		}
		return Satisfiable, model
	case -1:
		return Unsatisfiable, nil
	default:
		return TimedOut, nil
	}
}

// A SolverRun is one row of the CDCL benchmark summary.
type SolverRun struct {
	Name    string
	Verdict Verdict
	Elapsed time.Duration
}

// BenchmarkSolvers runs each named engine against f with a fresh budget
// of timeout apiece and collects the verdicts. Unknown names are
// reported and skipped.
func BenchmarkSolvers(names []string, f *Formula, timeout time.Duration, log *logrus.Logger) []SolverRun {
	log = orDiscard(log)
	runs := make([]SolverRun, 0, len(names))
	for _, name := range names {
		backend, ok := solverBackends[name]
		if !ok {
			log.Warnf("unknown solver %q, skipping", name)
			continue
		}
		log.Infof("testing solver %s (%s)", name, backend)
		bud := NewBudget(timeout)
		v, _ := solveGini(f, bud.Remaining(), log)
		runs = append(runs, SolverRun{Name: name, Verdict: v, Elapsed: bud.Elapsed()})
		log.Infof("solver %s: %s in %.4fs", name, v, bud.Elapsed().Seconds())
	}
	return runs
}

// MinimalTestFormula is the hardcoded self-test instance used by the
// front-end's minimal mode: (x1 ∨ x2) ∧ (¬x1 ∨ x3), trivially
// satisfiable.
func MinimalTestFormula() *Formula {
	f := &Formula{
		Clauses: []Clause{NewClause(1, 2), NewClause(-1, 3)},
		Vars:    map[int]struct{}{1: {}, 2: {}, 3: {}},
	}
	return f
}
