package cnf

// VarMap is a bijection between graph vertices and the boolean variables of
// a model. It is owned by the model it was built for; two models never share
// one.
type VarMap interface {
	// Variable returns the 1-based boolean variable associated with the vertex,
	// or 0 if the vertex is unknown.
	Variable(vertex int) int
	// Vertex returns the vertex associated with a 1-based boolean variable.
	Vertex(variable int) int
}

func NewVarMap(vertices []int) VarMap {
	variables := make(map[int]int, len(vertices))
	for i, vertex := range vertices {
		variables[vertex] = i + 1
	}
	return &positionalVarMap{
		vertices:  vertices,
		variables: variables,
	}
}

// positionalVarMap numbers variables by vertex position: the i-th vertex of
// the graph's vertex list owns variable i+1. For cycle and path graphs this
// puts adjacent vertices on adjacent variables, which keeps the counter's
// diagram and the optimizer's propagation frontier narrow.
type positionalVarMap struct {
	vertices  []int
	variables map[int]int
}

func (m *positionalVarMap) Variable(vertex int) int {
	return m.variables[vertex]
}

func (m *positionalVarMap) Vertex(variable int) int {
	return m.vertices[variable-1]
}
