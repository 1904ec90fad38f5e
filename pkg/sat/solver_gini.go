package sat

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"kernelset/pkg/cnf"
)

type giniSolver struct{}

// NewGiniSolver returns a backend over the gini SAT solver.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (s *giniSolver) Solve(model *cnf.Model) (cnf.Assignment, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	backend := gini.NewV(model.Variables())
	for _, clause := range model.Clauses() {
		for _, literal := range clause {
			if literal > 0 {
				backend.Add(z.Var(literal).Pos())
			} else {
				backend.Add(z.Var(-literal).Neg())
			}
		}
		backend.Add(z.LitNull)
	}

	if backend.Solve() != 1 {
		return nil, nil
	}

	assignment := make(cnf.Assignment, model.Variables())
	for variable := 1; variable <= model.Variables(); variable++ {
		assignment[variable-1] = backend.Value(z.Var(uint32(variable)).Pos())
	}
	return assignment, nil
}
