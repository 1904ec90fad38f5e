package sat

import (
	"github.com/crillab/gophersat/solver"

	"kernelset/pkg/cnf"
)

type gophersatSolver struct{}

// NewGophersatSolver returns a backend over the pure-Go gophersat CDCL
// solver.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(model *cnf.Model) (cnf.Assignment, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	modelClauses := model.Clauses()
	clauses := make([][]int, 0, len(modelClauses)+model.Variables())
	for _, clause := range modelClauses {
		clauses = append(clauses, []int(clause))
	}
	// Tautologies register variables no clause mentions, so the reported
	// assignment is total.
	for variable := 1; variable <= model.Variables(); variable++ {
		clauses = append(clauses, []int{variable, -variable})
	}

	pb := solver.ParseSlice(clauses)
	backend := solver.New(pb)
	if backend.Solve() != solver.Sat {
		return nil, nil
	}

	values := backend.Model()
	assignment := make(cnf.Assignment, model.Variables())
	for i := range assignment {
		assignment[i] = values[i]
	}
	return assignment, nil
}
