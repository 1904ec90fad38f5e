package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kernelset/pkg/cnf"
	"kernelset/pkg/graph"
	"kernelset/pkg/sat"
	"kernelset/pkg/weight"
)

// bruteForceOptimum enumerates every satisfying assignment and returns the
// maximum weight together with the lexicographically smallest assignment
// achieving it.
func bruteForceOptimum(t *testing.T, model *cnf.Model, weights []int64) (cnf.Assignment, int64, bool) {
	t.Helper()
	assert.LessOrEqual(t, model.Variables(), 20, "model too large to enumerate")

	var best cnf.Assignment
	var bestValue int64
	found := false

	// Ascending mask order with variable 1 in the lowest bit would not be
	// lexicographic; compare candidates explicitly instead.
	assignment := make(cnf.Assignment, model.Variables())
	for mask := 0; mask < 1<<model.Variables(); mask++ {
		for i := range assignment {
			assignment[i] = mask&(1<<i) != 0
		}
		if !model.Satisfies(assignment) {
			continue
		}

		value := int64(0)
		for i, selected := range assignment {
			if selected {
				value += weights[i]
			}
		}

		if !found || value > bestValue || (value == bestValue && lexLess(assignment, best)) {
			best = append(cnf.Assignment(nil), assignment...)
			bestValue = value
			found = true
		}
	}
	return best, bestValue, found
}

func lexLess(a, b cnf.Assignment) bool {
	for i := range a {
		if a[i] != b[i] {
			return !a[i]
		}
	}
	return false
}

func TestOptimizeMatchesEnumeration(t *testing.T) {
	// Arrange
	graphs := map[string]*graph.Graph{
		"cycle 3":  graph.Cycle(3),
		"cycle 10": graph.Cycle(10),
		"path 7":   graph.Path(7),
		"empty 5":  graph.Empty(5),
	}
	functions := map[string]weight.Function{
		"thue-morse": weight.ThueMorse,
		"unit":       weight.Unit,
		"negated": func(vertex int) int64 {
			return -weight.ThueMorse(vertex)
		},
	}

	for graphName, g := range graphs {
		for functionName, fn := range functions {
			t.Run(graphName+"/"+functionName, func(t *testing.T) {
				for _, build := range []func(*graph.Graph) (*cnf.Model, error){
					cnf.BuildIndependentSetModel,
					cnf.BuildKernelModel,
				} {
					model, err := build(g)
					assert.NoError(t, err)
					weights := weight.Vector(g, fn)

					// Act
					assignment, value, err := Optimize(model, weights)

					// Assert
					assert.NoError(t, err)
					expected, expectedValue, found := bruteForceOptimum(t, model, weights)
					assert.True(t, found)
					assert.Equal(t, expectedValue, value)
					assert.Equal(t, expected, assignment)
				}
			})
		}
	}
}

func TestOptimizeCycle100Kernel(t *testing.T) {
	// Arrange
	g := graph.Cycle(100)
	model, err := cnf.BuildKernelModel(g)
	assert.NoError(t, err)
	weights := weight.Vector(g, weight.ThueMorse)

	// Act
	assignment, value, err := Optimize(model, weights)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(28), value)
	assert.True(t, model.Satisfies(assignment))

	// Assert: the reported value is the sum over selected variables
	total := int64(0)
	for i, selected := range assignment {
		if selected {
			total += weights[i]
		}
	}
	assert.Equal(t, value, total)
}

func TestOptimizeDeterminism(t *testing.T) {
	// Arrange
	g := graph.Cycle(31)
	model, err := cnf.BuildKernelModel(g)
	assert.NoError(t, err)
	weights := weight.Vector(g, weight.ThueMorse)

	// Act: independent calls, with and without presolve
	first, firstValue, err1 := Optimize(model, weights)
	second, secondValue, err2 := Optimize(model, weights)
	third, thirdValue, err3 := New(Presolve(sat.NewGophersatSolver())).Optimize(model, weights)

	// Assert: identical assignments, not merely identical values
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, firstValue, secondValue)
	assert.Equal(t, firstValue, thirdValue)
}

func TestOptimizeLexicographicTieBreak(t *testing.T) {
	t.Run("independent sets of the 4-cycle", func(t *testing.T) {
		// Arrange: {1,3} and {2,4} both have cardinality 2
		model, err := cnf.BuildIndependentSetModel(graph.Cycle(4))
		assert.NoError(t, err)

		// Act
		assignment, value, err := Optimize(model, []int64{1, 1, 1, 1})

		// Assert: false-first ordering picks {2,4}
		assert.NoError(t, err)
		assert.Equal(t, int64(2), value)
		assert.Equal(t, cnf.Assignment{false, true, false, true}, assignment)
	})

	t.Run("kernels of the triangle", func(t *testing.T) {
		// Arrange: every single vertex is a kernel of weight 1
		model, err := cnf.BuildKernelModel(graph.Cycle(3))
		assert.NoError(t, err)

		// Act
		assignment, _, err := Optimize(model, []int64{1, 1, 1})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, cnf.Assignment{false, false, true}, assignment)
	})
}

func TestOptimizeNegationSymmetry(t *testing.T) {
	// Arrange
	g := graph.Cycle(12)
	model, err := cnf.BuildKernelModel(g)
	assert.NoError(t, err)
	weights := weight.Vector(g, weight.ThueMorse)
	negated := make([]int64, len(weights))
	for i, w := range weights {
		negated[i] = -w
	}

	// Act
	_, maxValue, err1 := Optimize(model, negated)

	// Assert: maximizing the negated weights is minimizing the original
	// ones, so the value must match a brute-force minimum.
	assert.NoError(t, err1)
	minValue := int64(1 << 30)
	assignment := make(cnf.Assignment, model.Variables())
	for mask := 0; mask < 1<<model.Variables(); mask++ {
		for i := range assignment {
			assignment[i] = mask&(1<<i) != 0
		}
		if !model.Satisfies(assignment) {
			continue
		}
		value := int64(0)
		for i, selected := range assignment {
			if selected {
				value += weights[i]
			}
		}
		minValue = min(minValue, value)
	}
	assert.Equal(t, -minValue, maxValue)
}

func TestOptimizeUnsatisfiable(t *testing.T) {
	// Arrange: contradictory unit clauses
	model := cnf.New(1, []cnf.Clause{{1}, {-1}})

	t.Run("detected by the diagram", func(t *testing.T) {
		// Act
		_, _, err := Optimize(model, []int64{1})

		// Assert
		assert.ErrorIs(t, err, ErrUnsatisfiable)
	})

	t.Run("detected by presolve backends", func(t *testing.T) {
		for _, solver := range []sat.Solver{sat.NewGophersatSolver(), sat.NewGiniSolver()} {
			// Act
			_, _, err := New(Presolve(solver)).Optimize(model, []int64{1})

			// Assert
			assert.ErrorIs(t, err, ErrUnsatisfiable)
		}
	})
}

func TestOptimizeWeightMismatch(t *testing.T) {
	// Arrange
	model, err := cnf.BuildIndependentSetModel(graph.Cycle(3))
	assert.NoError(t, err)

	// Act
	_, _, err = Optimize(model, []int64{1, 1})

	// Assert
	assert.ErrorIs(t, err, cnf.ErrModel)
}

func TestOptimizeNodesizeExhaustion(t *testing.T) {
	// Arrange
	model, err := cnf.BuildKernelModel(graph.Cycle(40))
	assert.NoError(t, err)

	// Act
	_, _, err = New(Nodesize(8)).Optimize(model, weight.Vector(graph.Cycle(40), weight.ThueMorse))

	// Assert
	assert.ErrorIs(t, err, ErrResourceExhausted)
}
