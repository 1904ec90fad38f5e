package graph

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// ErrInvalidGraph is reported when the vertex/edge lists are malformed:
// self-loops, duplicate edges or edges referencing unknown vertices.
var ErrInvalidGraph = errors.New("invalid graph")

// Edge is an unordered pair of distinct vertices.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected graph. Vertex order and edge order are
// preserved from construction; every derived artifact (variable numbering,
// clause order) follows them, which is what makes results reproducible.
type Graph struct {
	vertices  []int
	edges     []Edge
	adjacency map[int]mapset.Set[int]
}

// New validates and builds a graph from an ordered vertex list and an edge
// list. Vertices must be unique; edges must join two distinct known vertices
// and may not repeat in either orientation.
func New(vertices []int, edges []Edge) (*Graph, error) {
	known := mapset.NewSetWithSize[int](len(vertices))
	for _, v := range vertices {
		if !known.Add(v) {
			return nil, fmt.Errorf("%w: duplicate vertex %v", ErrInvalidGraph, v)
		}
	}

	adjacency := make(map[int]mapset.Set[int], len(vertices))
	for _, v := range vertices {
		adjacency[v] = mapset.NewSet[int]()
	}

	seen := mapset.NewSetWithSize[Edge](len(edges))
	for _, edge := range edges {
		if edge.U == edge.V {
			return nil, fmt.Errorf("%w: self-loop on vertex %v", ErrInvalidGraph, edge.U)
		}
		if !known.Contains(edge.U) || !known.Contains(edge.V) {
			return nil, fmt.Errorf("%w: edge (%v, %v) references an unknown vertex", ErrInvalidGraph, edge.U, edge.V)
		}
		if !seen.Add(normalize(edge)) {
			return nil, fmt.Errorf("%w: duplicate edge (%v, %v)", ErrInvalidGraph, edge.U, edge.V)
		}
		adjacency[edge.U].Add(edge.V)
		adjacency[edge.V].Add(edge.U)
	}

	return &Graph{
		vertices:  slices.Clone(vertices),
		edges:     slices.Clone(edges),
		adjacency: adjacency,
	}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.vertices)
}

// Vertices returns the vertex list in construction order.
func (g *Graph) Vertices() []int {
	return slices.Clone(g.vertices)
}

// Edges returns the edge list in construction order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Neighbors returns the sorted neighbor list of v, empty for isolated
// vertices or vertices not present in the graph.
func (g *Graph) Neighbors(v int) []int {
	neighbors, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	sorted := neighbors.ToSlice()
	slices.Sort(sorted)
	return sorted
}

func normalize(edge Edge) Edge {
	if edge.U > edge.V {
		return Edge{U: edge.V, V: edge.U}
	}
	return edge
}

// Cycle builds the cycle graph on vertices 1..n (n >= 3).
func Cycle(n int) *Graph {
	if n < 3 {
		panic(fmt.Sprintf("cycle requires at least 3 vertices, got %d", n))
	}
	edges := lo.Map(lo.Range(n-1), func(i int, _ int) Edge {
		return Edge{U: i + 1, V: i + 2}
	})
	edges = append(edges, Edge{U: n, V: 1})
	return mustNew(n, edges)
}

// Path builds the path graph on vertices 1..n (n >= 1).
func Path(n int) *Graph {
	if n < 1 {
		panic(fmt.Sprintf("path requires at least 1 vertex, got %d", n))
	}
	edges := lo.Map(lo.Range(n-1), func(i int, _ int) Edge {
		return Edge{U: i + 1, V: i + 2}
	})
	return mustNew(n, edges)
}

// Empty builds the edgeless graph on vertices 1..n.
func Empty(n int) *Graph {
	return mustNew(n, nil)
}

func mustNew(n int, edges []Edge) *Graph {
	vertices := lo.Map(lo.Range(n), func(i int, _ int) int { return i + 1 })
	g, err := New(vertices, edges)
	if err != nil {
		panic(fmt.Sprintf("generator produced an invalid graph: %v", err))
	}
	return g
}
