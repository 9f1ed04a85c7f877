package satcmp

import "github.com/sirupsen/logrus"

// SolveDPLL decides satisfiability by backtracking search with unit
// propagation and pure-literal elimination. Unlike DP it never
// cross-resolves clauses, so memory stays linear in the input along any
// one branch. The budget is polled at the top of every recursive call.
func SolveDPLL(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, Stats) {
	var stats Stats
	v := dpllSolve(f.Clauses, bud, orDiscard(log), &stats)
	stats.Elapsed = bud.Elapsed()
	return v, stats
}

func dpllSolve(clauses []Clause, bud *Budget, log *logrus.Logger, stats *Stats) Verdict {
	stats.Calls++
	if bud.Expired() {
		return TimedOut
	}
	if stats.Calls%1000 == 0 {
		log.Debugf("dpll progress: %d recursive calls, %d clauses", stats.Calls, len(clauses))
	}

	clauses, conflict := unitPropagate(clauses)
	if conflict {
		return Unsatisfiable
	}
	if reduced, changed := eliminatePureLiterals(clauses); changed {
		return dpllSolve(reduced, bud, log, stats)
	}

	if len(clauses) == 0 {
		return Satisfiable
	}
	if anyEmpty(clauses) {
		// Propagation should have caught this; an input empty clause
		// reaches here untouched.
		return Unsatisfiable
	}

	// Decision: first literal of the first clause in enumeration order.
	// Clause canonicalization makes this deterministic on identical
	// inputs.
	lit := clauses[0][0]

	switch v := dpllSolve(assignLiteral(clauses, lit), bud, log, stats); v {
	case Satisfiable, TimedOut:
		return v
	}
	return dpllSolve(assignLiteral(clauses, -lit), bud, log, stats)
}
