package cnf

import (
	"fmt"

	"github.com/samber/lo"

	"kernelset/pkg/graph"
)

// BuildIndependentSetModel encodes independence: for every edge (u, v) the
// clause (-u, -v) forbids selecting both endpoints. Clause order follows the
// graph's edge order.
func BuildIndependentSetModel(g *graph.Graph) (*Model, error) {
	vars := NewVarMap(g.Vertices())

	clauses := lo.Map(g.Edges(), func(edge graph.Edge, _ int) Clause {
		return Clause{-vars.Variable(edge.U), -vars.Variable(edge.V)}
	})

	model := &Model{
		variables: g.Order(),
		clauses:   clauses,
		vars:      vars,
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("%w: graph edges do not match its vertex set", graph.ErrInvalidGraph)
	}
	return model, nil
}

// BuildKernelModel encodes maximal independence: the independence clauses,
// followed by one maximality clause per vertex in vertex order asserting
// that the vertex or one of its neighbors is selected. An isolated vertex
// yields the unit clause selecting it, which is the correct maximality
// semantics: leaving an untouchable vertex out is never maximal.
func BuildKernelModel(g *graph.Graph) (*Model, error) {
	model, err := BuildIndependentSetModel(g)
	if err != nil {
		return nil, err
	}

	for _, vertex := range g.Vertices() {
		clause := Clause{model.vars.Variable(vertex)}
		for _, neighbor := range g.Neighbors(vertex) {
			clause = append(clause, model.vars.Variable(neighbor))
		}
		model.clauses = append(model.clauses, clause)
	}

	return model, nil
}
