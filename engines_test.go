package satcmp

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

var engines = []struct {
	name  string
	solve Engine
}{
	{"resolution", SolveResolution},
	{"dp", SolveDP},
	{"dpll", SolveDPLL},
	{"cdcl", SolveCDCL},
}

func formulaFrom(clauses [][]int) *Formula {
	f := &Formula{Vars: make(map[int]struct{})}
	for _, lits := range clauses {
		c := NewClause(lits...)
		if c.IsEmpty() {
			f.EmptyClauses++
		}
		for _, lit := range c {
			f.Vars[abs(lit)] = struct{}{}
		}
		f.Clauses = append(f.Clauses, c)
	}
	return f
}

func TestScenarios(t *testing.T) {
	for _, tt := range []struct {
		name    string
		clauses [][]int
		want    Verdict
	}{
		{"S1 two clauses", [][]int{{1, 2}, {-1, 3}}, Satisfiable},
		{"S2 unit contradiction", [][]int{{1}, {-1}}, Unsatisfiable},
		{"S3 two-var exhaustion", [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}, Unsatisfiable},
		{"S4 implication cycle", [][]int{{1, -2}, {2, -3}, {3, -1}, {-1, -2, -3}, {1, 2, 3}}, Satisfiable},
		{"S5 forced conflict", [][]int{{1, 2, 3}, {-1}, {-2}, {-3}}, Unsatisfiable},
		{"S6 chain", [][]int{{1, 2}, {2, 3}, {-1, -3}}, Satisfiable},
	} {
		for _, eng := range engines {
			t.Run(fmt.Sprintf("%s/%s", tt.name, eng.name), func(t *testing.T) {
				got, _ := eng.solve(formulaFrom(tt.clauses), NewBudget(testTimeout), nil)
				require.Equal(t, tt.want, got)
			})
		}
	}
}

func TestEmptyFormula(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			got, _ := eng.solve(formulaFrom(nil), NewBudget(testTimeout), nil)
			require.Equal(t, Satisfiable, got)
		})
	}
}

func TestInputEmptyClause(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			got, _ := eng.solve(formulaFrom([][]int{{1, 2}, {}}), NewBudget(testTimeout), nil)
			require.Equal(t, Unsatisfiable, got)
		})
	}
}

func TestTautologyInsensitivity(t *testing.T) {
	base := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	withTautology := append([][]int{{2, -2}}, base...)
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			plain, _ := eng.solve(formulaFrom(base), NewBudget(testTimeout), nil)
			taut, _ := eng.solve(formulaFrom(withTautology), NewBudget(testTimeout), nil)
			require.Equal(t, plain, taut)
		})
	}
}

func TestDuplicateInsensitivity(t *testing.T) {
	base := [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	doubled := append([][]int{{1, 2}, {2, 1}}, base...)
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			plain, _ := eng.solve(formulaFrom(base), NewBudget(testTimeout), nil)
			dup, _ := eng.solve(formulaFrom(doubled), NewBudget(testTimeout), nil)
			require.Equal(t, plain, dup)
		})
	}
}

func TestExpiredBudget(t *testing.T) {
	f := formulaFrom([][]int{{1, 2}, {-1, 3}})
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			got, _ := eng.solve(f, NewBudget(-time.Second), nil)
			require.Equal(t, TimedOut, got)
		})
	}
}

func TestEngineAgreement(t *testing.T) {
	// Every pair of engines that terminates within budget must agree.
	formulas := [][][]int{
		{{1}},
		{{1, 2}, {-1}, {-2}},
		{{1, -2}, {2, -3}, {3}},
		{{1, 2, 3}, {-1, -2}, {-2, -3}, {-1, -3}, {-1, 2}, {1, -2, 3}},
	}
	for i, clauses := range formulas {
		f := formulaFrom(clauses)
		verdicts := make(map[string]Verdict)
		for _, eng := range engines {
			v, _ := eng.solve(f, NewBudget(testTimeout), nil)
			require.NotEqual(t, TimedOut, v, "formula %d engine %s timed out", i, eng.name)
			verdicts[eng.name] = v
		}
		for _, eng := range engines {
			require.Equal(t, verdicts["dpll"], verdicts[eng.name],
				"formula %d: %s disagrees with dpll", i, eng.name)
		}
	}
}

func TestFixtures(t *testing.T) {
	filenames, err := filepath.Glob("testdata/*.cnf")
	require.NoError(t, err)
	require.NotEmpty(t, filenames)
	for _, filename := range filenames {
		want := Unknown
		switch {
		case strings.HasSuffix(filename, ".sat.cnf"):
			want = Satisfiable
		case strings.HasSuffix(filename, ".unsat.cnf"):
			want = Unsatisfiable
		default:
			t.Fatalf("bad testdata CNF filename: %q", filename)
		}

		file, err := os.Open(filename)
		require.NoError(t, err)
		f, err := ParseDIMACS(file)
		file.Close()
		require.NoError(t, err, "bad fixture %s", filename)

		for _, eng := range engines {
			t.Run(fmt.Sprintf("%s/%s", filepath.Base(filename), eng.name), func(t *testing.T) {
				got, _ := eng.solve(f, NewBudget(testTimeout), nil)
				require.Equal(t, want, got)
			})
		}
	}
}

// TestRandom3CNF cross-checks DPLL against the CDCL engine on a battery
// of random 3-CNF instances at the hard ratio of 4.2 clauses per
// variable.
func TestRandom3CNF(t *testing.T) {
	for _, numVars := range []int{10, 15, 20} {
		numClauses := int(4.2 * float64(numVars))
		t.Run(fmt.Sprintf("vars=%d,clauses=%d", numVars, numClauses), func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				f := makeRandom3CNF(seed, numVars, numClauses)
				got, _ := SolveDPLL(f, NewBudget(testTimeout), nil)
				truth, _ := SolveCDCL(f, NewBudget(testTimeout), nil)
				require.NotEqual(t, TimedOut, truth, "seed %d", seed)
				require.Equal(t, truth, got, "seed=%d:\n%s", seed, dimacsText(f.Clauses))
			}
		})
	}
}

func TestCDCLModelValid(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		f := makeRandom3CNF(seed, 10, 30)
		verdict, model := SolveCDCLModel(f, NewBudget(testTimeout), nil)
		if verdict != Satisfiable {
			continue
		}
		require.True(t, solutionIsValid(f.Clauses, model),
			"seed=%d: model %v does not satisfy\n%s", seed, model, dimacsText(f.Clauses))
	}
}

func makeRandom3CNF(seed int64, numVars, numClauses int) *Formula {
	rng := rand.New(rand.NewSource(seed))
	clauses := make([][]int, numClauses)
	for i := range clauses {
		perm := rng.Perm(numVars)
		clause := make([]int, 3)
		for j := 0; j < 3; j++ {
			v := perm[j] + 1
			if rng.Intn(2) == 1 {
				v = -v
			}
			clause[j] = v
		}
		clauses[i] = clause
	}
	return formulaFrom(clauses)
}

func solutionIsValid(clauses []Clause, soln []int) bool {
	vars := make(map[int]bool)
	for _, v := range soln {
		vars[v] = true
	}
clauseLoop:
	for _, clause := range clauses {
		for _, v := range clause {
			if vars[v] {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

func dimacsText(clauses []Clause) string {
	var b strings.Builder
	if err := WriteDIMACS(&b, clauses); err != nil {
		panic(err)
	}
	return b.String()
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "SATISFIABLE", Satisfiable.String())
	require.Equal(t, "UNSATISFIABLE", Unsatisfiable.String())
	require.Equal(t, "TIMEOUT", TimedOut.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
}
