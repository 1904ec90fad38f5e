// Package input decodes problem descriptions from JSON files: a graph, a
// model kind and a weight specification, either explicit per-vertex values
// or a named rule.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"kernelset/pkg/cnf"
	"kernelset/pkg/graph"
	"kernelset/pkg/weight"
)

// Problem mirrors the JSON problem file layout.
type Problem struct {
	Vertices []int
	Edges    [][]int
	Model    string            // "independent" or "kernel"
	Rule     string            `mapstructure:"weightRule"` // "thue-morse" or "unit"
	Weights  map[string]int64  // explicit per-vertex weights, overrides Rule
}

// GetWeights converts the JSON string-keyed weight dictionary into a
// vertex-keyed one.
func (p Problem) GetWeights() map[int]int64 {
	result := make(map[int]int64)
	for k, v := range p.Weights {
		key, err := strconv.Atoi(k)
		if err != nil {
			panic(fmt.Sprintf("cannot transform dictionary: %v", err))
		}
		result[key] = v
	}
	return result
}

// Graph validates and builds the problem's graph.
func (p Problem) Graph() (*graph.Graph, error) {
	edges := make([]graph.Edge, 0, len(p.Edges))
	for _, pair := range p.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: edge %v is not a pair", graph.ErrInvalidGraph, pair)
		}
		edges = append(edges, graph.Edge{U: pair[0], V: pair[1]})
	}
	return graph.New(p.Vertices, edges)
}

// BuildModel builds the requested boolean model over the problem's graph.
func (p Problem) BuildModel(g *graph.Graph) (*cnf.Model, error) {
	switch p.Model {
	case "", "independent":
		return cnf.BuildIndependentSetModel(g)
	case "kernel":
		return cnf.BuildKernelModel(g)
	default:
		return nil, fmt.Errorf("unknown model kind %q", p.Model)
	}
}

// WeightVector resolves the problem's weight specification into a vector
// aligned with the graph's vertex order. Explicit weights win over the named
// rule; vertices missing from an explicit dictionary weigh zero.
func (p Problem) WeightVector(g *graph.Graph) ([]int64, error) {
	if len(p.Weights) > 0 {
		explicit := p.GetWeights()
		return weight.Vector(g, func(vertex int) int64 {
			return explicit[vertex]
		}), nil
	}

	switch p.Rule {
	case "thue-morse":
		return weight.Vector(g, weight.ThueMorse), nil
	case "", "unit":
		return weight.Vector(g, weight.Unit), nil
	default:
		return nil, fmt.Errorf("unknown weight rule %q", p.Rule)
	}
}

// FromJson reads a problem description from a JSON file.
func FromJson(file string) (Problem, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Problem{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Problem{}, err
	}

	var problem Problem
	mapstructure.Decode(inputJson, &problem)

	return problem, nil
}
