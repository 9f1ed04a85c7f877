package satcmp

import (
	"sort"
	"strconv"
	"strings"
)

// A Clause is a disjunction of literals held in canonical form: sorted
// by variable index, the positive literal ahead of the negative one
// when a clause (transiently) carries both polarities of a variable,
// and with duplicates removed. Literals are non-zero ints whose
// absolute value is the variable index and whose sign is the polarity.
//
// Canonical form makes equality, hashing (via Key) and the first-clash
// scan deterministic, which in turn makes every engine deterministic on
// identical input.
type Clause []int

// NewClause canonicalizes lits into a Clause. The input slice is not
// retained.
func NewClause(lits ...int) Clause {
	c := make(Clause, 0, len(lits))
	c = append(c, lits...)
	sort.Slice(c, func(i, j int) bool {
		vi, vj := abs(c[i]), abs(c[j])
		if vi != vj {
			return vi < vj
		}
		return c[i] > c[j]
	})
	// Drop duplicates in place.
	j := 0
	for i, lit := range c {
		if i > 0 && lit == c[j-1] {
			continue
		}
		c[j] = lit
		j++
	}
	return c[:j]
}

func (c Clause) Len() int      { return len(c) }
func (c Clause) IsEmpty() bool { return len(c) == 0 }

func (c Clause) Contains(lit int) bool {
	for _, l := range c {
		if l == lit {
			return true
		}
	}
	return false
}

// IsTautology reports whether the clause contains a literal and its
// negation. Canonical ordering puts both polarities of a variable next
// to each other.
func (c Clause) IsTautology() bool {
	for i := 1; i < len(c); i++ {
		if c[i] == -c[i-1] {
			return true
		}
	}
	return false
}

// Subsumes reports c ⊆ d: every literal of c occurs in d, so d is
// redundant whenever c is present.
func (c Clause) Subsumes(d Clause) bool {
	if len(c) > len(d) {
		return false
	}
	for _, lit := range c {
		if !d.Contains(lit) {
			return false
		}
	}
	return true
}

// Key returns a string identity for the clause, usable as a map key for
// expected O(1) set membership. Equal clause sets always produce equal
// keys because clauses are canonical.
func (c Clause) Key() string {
	var b strings.Builder
	for i, lit := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(lit))
	}
	return b.String()
}

func (c Clause) String() string {
	return "{" + strings.ReplaceAll(c.Key(), " ", ", ") + "}"
}

// without returns a copy of c with one literal removed. Removal keeps
// canonical order, so the result needs no re-sort.
func (c Clause) without(lit int) Clause {
	out := make(Clause, 0, len(c)-1)
	for _, l := range c {
		if l != lit {
			out = append(out, l)
		}
	}
	return out
}

// Resolve computes the resolvent (a \ {lit}) ∪ (b \ {-lit}). The caller
// is responsible for the precondition lit ∈ a, ¬lit ∈ b, and for
// rejecting a tautological result.
func Resolve(a, b Clause, lit int) Clause {
	merged := make([]int, 0, len(a)+len(b)-2)
	for _, l := range a {
		if l != lit {
			merged = append(merged, l)
		}
	}
	for _, l := range b {
		if l != -lit {
			merged = append(merged, l)
		}
	}
	return NewClause(merged...)
}

// FirstClash returns the first literal of a (in canonical order) whose
// negation occurs in b. This is the one-resolvent-per-pair rule of the
// saturation engine: when two clauses clash on several variables, every
// resolvent is a tautology anyway, so resolving on the first clash
// loses nothing.
func FirstClash(a, b Clause) (int, bool) {
	for _, lit := range a {
		if b.Contains(-lit) {
			return lit, true
		}
	}
	return 0, false
}

// clauseSet is a clause collection with set semantics and stable
// insertion order. The order stability keeps the saturation engine's
// pair enumeration deterministic; the key index gives expected O(1)
// duplicate rejection.
type clauseSet struct {
	index map[string]struct{}
	list  []Clause
}

func newClauseSet(capHint int) *clauseSet {
	return &clauseSet{
		index: make(map[string]struct{}, capHint),
		list:  make([]Clause, 0, capHint),
	}
}

// add inserts c unless an equal clause is already present. It reports
// whether the set grew.
func (s *clauseSet) add(c Clause) bool {
	k := c.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.list = append(s.list, c)
	return true
}

func (s *clauseSet) has(c Clause) bool {
	_, ok := s.index[c.Key()]
	return ok
}

func (s *clauseSet) len() int { return len(s.list) }
