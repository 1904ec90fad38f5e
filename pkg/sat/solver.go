// Package sat wraps in-process SAT backends behind one interface. The
// engine's own counter and optimizer are exact and self-contained; these
// backends serve as fast satisfiability probes and as independent
// cross-checks on models and assignments.
package sat

import "kernelset/pkg/cnf"

// Solver decides satisfiability of a CNF model.
type Solver interface {
	// Solve returns a satisfying assignment, or nil with a nil error when the
	// model is unsatisfiable.
	Solve(model *cnf.Model) (cnf.Assignment, error)
}
