package satcmp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalTestFormula(t *testing.T) {
	f := MinimalTestFormula()
	verdict, model := SolveCDCLModel(f, NewBudget(testTimeout), nil)
	require.Equal(t, Satisfiable, verdict)
	require.True(t, solutionIsValid(f.Clauses, model), "model %v", model)
}

func TestSolveCDCLUnsat(t *testing.T) {
	f := formulaFrom([][]int{{1}, {-1}})
	verdict, _ := SolveCDCL(f, NewBudget(testTimeout), nil)
	assert.Equal(t, Unsatisfiable, verdict)
}

func TestBenchmarkSolvers(t *testing.T) {
	f := formulaFrom([][]int{{1, 2}, {-1, 3}})
	runs := BenchmarkSolvers([]string{"g3", "g4", "cd", "m22"}, f, time.Second, nil)
	require.Len(t, runs, 4)
	for _, run := range runs {
		assert.Equal(t, Satisfiable, run.Verdict, "solver %s", run.Name)
	}
}

func TestBenchmarkSolversUnknownName(t *testing.T) {
	f := formulaFrom([][]int{{1}})
	runs := BenchmarkSolvers([]string{"nope", "g3"}, f, time.Second, nil)
	require.Len(t, runs, 1)
	assert.Equal(t, "g3", runs[0].Name)
}

func TestSolveCDCLEmptyClauseShortCircuit(t *testing.T) {
	// The adapter must not hand an empty clause to the external engine.
	f := formulaFrom([][]int{{1, 2}, {}})
	verdict, _ := SolveCDCL(f, NewBudget(testTimeout), nil)
	assert.Equal(t, Unsatisfiable, verdict)
}
