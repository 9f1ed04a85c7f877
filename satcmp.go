// Package satcmp implements a family of propositional SAT deciders over
// formulas in DIMACS CNF: saturation under binary resolution, the
// Davis-Putnam variable-elimination procedure, the classic DPLL
// backtracking search, and a front-end over the gini CDCL engine.
//
// All deciders consume the same parsed clause set and a wall-clock
// budget, and report one of three verdicts: satisfiable, unsatisfiable,
// or timed out. The deciders share no state and each solve is a fresh
// computation over immutable input.
package satcmp

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Verdict is the outcome of a single solve.
type Verdict int

const (
	Unknown Verdict = iota
	Satisfiable
	Unsatisfiable
	TimedOut
)

func (v Verdict) String() string {
	switch v {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	case TimedOut:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Stats carries informational counters from a solve. Which fields are
// populated depends on the decider: the resolution engine counts
// resolvents, the recursive engines count calls.
type Stats struct {
	Calls      int64
	Resolvents int64
	Elapsed    time.Duration
}

// Engine is the common shape of every decider in this package.
type Engine func(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, Stats)

// orDiscard lets engines take a nil logger.
func orDiscard(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
