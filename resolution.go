package satcmp

import "github.com/sirupsen/logrus"

// SolveResolution saturates the clause set under binary resolution: the
// formula is unsatisfiable iff the empty clause is derivable, and
// satisfiable once a full round adds no new clause. Saturation is
// worst-case doubly exponential in the input, so the budget is the only
// safety net; it is polled at the top of each round.
func SolveResolution(f *Formula, bud *Budget, log *logrus.Logger) (Verdict, Stats) {
	log = orDiscard(log)
	var stats Stats
	done := func(v Verdict) (Verdict, Stats) {
		stats.Elapsed = bud.Elapsed()
		return v, stats
	}

	working := newClauseSet(len(f.Clauses))
	for _, c := range f.Clauses {
		working.add(c)
	}
	if anyEmpty(working.list) {
		return done(Unsatisfiable)
	}

	for {
		if bud.Expired() {
			log.Debugf("resolution timed out with %d resolvents", stats.Resolvents)
			return done(TimedOut)
		}
		log.Debugf("resolution round: %d clauses", working.len())

		// New clauses participate only from the next round: pairs are
		// enumerated over a snapshot of the set taken at round start,
		// which keeps per-round work bounded.
		fresh := newClauseSet(0)
		n := working.len()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ci, cj := working.list[i], working.list[j]
				lit, ok := FirstClash(ci, cj)
				if !ok {
					continue
				}
				r := Resolve(ci, cj, lit)
				if r.IsTautology() {
					continue
				}
				if r.IsEmpty() {
					stats.Resolvents++
					log.Debug("derived the empty clause")
					return done(Unsatisfiable)
				}
				if working.has(r) || !fresh.add(r) {
					continue
				}
				stats.Resolvents++
				if stats.Resolvents%1000 == 0 {
					log.Debugf("generated %d resolvents", stats.Resolvents)
				}
			}
		}

		if fresh.len() == 0 {
			return done(Satisfiable)
		}
		log.Debugf("adding %d new clauses", fresh.len())
		for _, c := range fresh.list {
			working.add(c)
		}
	}
}
