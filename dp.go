package satcmp

import "github.com/sirupsen/logrus"

// SolveDP decides satisfiability with the Davis-Putnam procedure:
// eliminate variables one at a time by resolving every positive
// occurrence against every negative one, simplifying between steps with
// unit propagation, pure-literal elimination and subsumption. Memory is
// unbounded in the worst case; the budget is polled at every recursive
// entry.
func SolveDP(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, Stats) {
	var stats Stats
	v := dpSolve(f.Clauses, bud, orDiscard(log), &stats)
	stats.Elapsed = bud.Elapsed()
	return v, stats
}

func dpSolve(clauses []Clause, bud *Budget, log *logrus.Logger, stats *Stats) Verdict {
	stats.Calls++
	if bud.Expired() {
		return TimedOut
	}
	if stats.Calls%100 == 0 {
		log.Debugf("dp progress: %d recursive calls, %d clauses", stats.Calls, len(clauses))
	}

	clauses, conflict := unitPropagate(clauses)
	if conflict {
		return Unsatisfiable
	}
	if len(clauses) == 0 {
		return Satisfiable
	}
	if anyEmpty(clauses) {
		return Unsatisfiable
	}

	if reduced, changed := eliminatePureLiterals(clauses); changed {
		return dpSolve(reduced, bud, log, stats)
	}

	clauses = reduceSubsumed(clauses)

	// Smallest-indexed variable with both polarities remaining. If none
	// exists every variable is pure and the formula is satisfiable.
	v, ok := firstClashingVar(clauses)
	if !ok {
		return Satisfiable
	}

	pos := make([]Clause, 0)
	neg := make([]Clause, 0)
	rest := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		switch {
		case c.Contains(v):
			pos = append(pos, c)
		case c.Contains(-v):
			neg = append(neg, c)
		default:
			rest = append(rest, c)
		}
	}

	next := rest
	for _, p := range pos {
		for _, n := range neg {
			r := Resolve(p, n, v)
			// A resolvent still mentioning v came from a self-clash
			// and is tautological, as is any other clashing pair.
			if r.Contains(v) || r.Contains(-v) || r.IsTautology() {
				continue
			}
			if r.IsEmpty() {
				return Unsatisfiable
			}
			next = append(next, r)
		}
	}
	return dpSolve(reduceSubsumed(next), bud, log, stats)
}

// firstClashingVar returns the smallest variable occurring with both
// polarities.
func firstClashingVar(clauses []Clause) (int, bool) {
	occurs := make(map[int]struct{})
	for _, c := range clauses {
		for _, lit := range c {
			occurs[lit] = struct{}{}
		}
	}
	best := 0
	for lit := range occurs {
		v := abs(lit)
		if _, ok := occurs[-lit]; !ok {
			continue
		}
		if best == 0 || v < best {
			best = v
		}
	}
	return best, best != 0
}
