package cnf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModel is reported when a model is internally inconsistent: a clause
// references a variable outside the declared variable set, or contains an
// invalid literal.
var ErrModel = errors.New("malformed model")

// Clause is a disjunction of literals in the DIMACS convention: literal v
// selects variable v, literal -v its negation. Variables are 1-based.
type Clause []int

// Assignment is a total valuation of a model's variables; index i holds the
// value of variable i+1.
type Assignment []bool

// Model is an immutable conjunction of clauses over variables 1..Variables().
// Every vertex of the source graph owns exactly one variable, even when no
// clause constrains it.
type Model struct {
	variables int
	clauses   []Clause
	vars      VarMap
}

// New builds a model directly from a clause list, numbering vertices
// identically to variables. Intended for callers that already speak the
// DIMACS convention; graph-backed models come from the Build functions.
func New(variables int, clauses []Clause) *Model {
	vertices := make([]int, variables)
	for i := range vertices {
		vertices[i] = i + 1
	}
	return &Model{
		variables: variables,
		clauses:   clauses,
		vars:      NewVarMap(vertices),
	}
}

// Variables returns the size of the declared variable set.
func (m *Model) Variables() int {
	return m.variables
}

// Clauses returns a copy of the clause list in model order.
func (m *Model) Clauses() []Clause {
	clauses := make([]Clause, len(m.clauses))
	for i, clause := range m.clauses {
		clauses[i] = append(Clause(nil), clause...)
	}
	return clauses
}

// VarMap returns the vertex-variable bijection owned by the model.
func (m *Model) VarMap() VarMap {
	return m.vars
}

// Validate checks that every clause is a non-empty disjunction of literals
// over the declared variable set.
func (m *Model) Validate() error {
	if m.variables < 0 {
		return fmt.Errorf("%w: negative variable count %d", ErrModel, m.variables)
	}
	for i, clause := range m.clauses {
		if len(clause) == 0 {
			return fmt.Errorf("%w: clause %d is empty", ErrModel, i)
		}
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable == 0 || variable > m.variables {
				return fmt.Errorf("%w: clause %d references variable %d outside 1..%d", ErrModel, i, literal, m.variables)
			}
		}
	}
	return nil
}

// Satisfies reports whether the assignment is total and makes at least one
// literal of every clause true.
func (m *Model) Satisfies(assignment Assignment) bool {
	if len(assignment) != m.variables {
		return false
	}
	for _, clause := range m.clauses {
		satisfied := false
		for _, literal := range clause {
			if literal > 0 && assignment[literal-1] || literal < 0 && !assignment[-literal-1] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// ToDIMACS renders the model in the DIMACS-CNF format accepted by standalone
// SAT solvers.
func (m *Model) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", m.variables, len(m.clauses))
	for _, clause := range m.clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
