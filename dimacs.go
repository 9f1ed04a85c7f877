package satcmp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidFormat is reported when the input carries a problem line
// whose type is not cnf, or whose counts cannot be read.
var ErrInvalidFormat = errors.New("invalid DIMACS format")

// A Formula is a parsed CNF: the clause list, the set of variables the
// clauses actually mention, and whatever the problem line declared. The
// declared counts are advisory; engines work from the clauses alone and
// accept formulas whose real maximum variable exceeds the header.
type Formula struct {
	Clauses []Clause
	Vars    map[int]struct{}

	HasHeader       bool
	DeclaredVars    int
	DeclaredClauses int

	// EmptyClauses counts explicit empty clauses in the input (a bare
	// "0" line). They are preserved, not dropped: any engine that sees
	// one correctly reports unsatisfiable. SkippedTokens counts
	// non-integer tokens ignored by the tolerant reader.
	EmptyClauses  int
	SkippedTokens int
}

func (f *Formula) NumVars() int    { return len(f.Vars) }
func (f *Formula) NumClauses() int { return len(f.Clauses) }

func (f *Formula) HasEmptyClause() bool {
	return anyEmpty(f.Clauses)
}

// ParseDIMACS parses text in the DIMACS CNF format, one clause per
// line.
//
// The reader is tolerant, accepting a few common variations:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just
//     in the preamble.
//   - The problem line may be missing.
//   - A line beginning with '%' ends the formula; some archives attach
//     trailer data after it.
//   - Non-integer tokens on clause lines are skipped (and counted in
//     SkippedTokens).
//
// A clause line is a whitespace-separated run of signed non-zero
// integers with an optional terminating 0. A line holding only the
// terminator is kept as an explicit empty clause.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	f := &Formula{Vars: make(map[int]struct{})}
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line[0] == '%' {
			break
		}
		if line[0] == 'p' {
			if err := f.parseHeader(line); err != nil {
				return nil, err
			}
			continue
		}

		fields := strings.Fields(line)
		terminated := false
		if fields[len(fields)-1] == "0" {
			fields = fields[:len(fields)-1]
			terminated = true
		}
		var lits []int
		for _, field := range fields {
			if field == "0" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				f.SkippedTokens++
				continue
			}
			lits = append(lits, n)
			f.Vars[abs(n)] = struct{}{}
		}
		switch {
		case len(lits) > 0:
			f.Clauses = append(f.Clauses, NewClause(lits...))
		case terminated:
			// An explicit empty clause; downstream engines will
			// report unsatisfiable.
			f.Clauses = append(f.Clauses, NewClause())
			f.EmptyClauses++
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Formula) parseHeader(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] != "cnf" {
		return errors.Wrapf(ErrInvalidFormat, "problem line %q is not a cnf header", line)
	}
	if len(fields) != 4 {
		return errors.Wrapf(ErrInvalidFormat, "malformed problem line %q", line)
	}
	vars, err := strconv.Atoi(fields[2])
	if err != nil {
		return errors.Wrapf(ErrInvalidFormat, "malformed #vars in problem line %q", line)
	}
	clauses, err := strconv.Atoi(fields[3])
	if err != nil {
		return errors.Wrapf(ErrInvalidFormat, "malformed #clauses in problem line %q", line)
	}
	if vars < 0 || clauses < 0 {
		return errors.Wrapf(ErrInvalidFormat, "negative counts in problem line %q", line)
	}
	f.HasHeader = true
	f.DeclaredVars = vars
	f.DeclaredClauses = clauses
	return nil
}

// ReadFile opens and parses a CNF file.
func ReadFile(path string) (*Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading CNF input")
	}
	defer file.Close()
	f, err := ParseDIMACS(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return f, nil
}

// WriteDIMACS writes clauses in the DIMACS CNF format, one clause per
// line, each terminated by 0. The problem line declares the maximum
// variable index in use.
func WriteDIMACS(w io.Writer, clauses []Clause) error {
	maxVar := 0
	for _, c := range clauses {
		for _, lit := range c {
			if v := abs(lit); v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		var b strings.Builder
		for _, lit := range c {
			b.WriteString(strconv.Itoa(lit))
			b.WriteByte(' ')
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
