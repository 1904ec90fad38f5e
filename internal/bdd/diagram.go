// Package bdd implements the reduced ordered binary decision diagram shared
// by the model counter and the weighted optimizer. The variable order is the
// model's own order; node sharing and an operation cache keep diagrams for
// cycle- and path-shaped constraint graphs small regardless of how many
// assignments they represent.
package bdd

import (
	"errors"
	"fmt"
	"slices"

	"kernelset/pkg/cnf"
)

// ErrResourceExhausted is reported when a diagram grows past its configured
// node limit. Callers never receive a partial diagram.
var ErrResourceExhausted = errors.New("resource limit exceeded")

// Node ids 0 and 1 are the False and True terminals. Levels are 0-based
// variable positions; terminals sit one level past the last variable so that
// level gaps directly give the number of free variables along an edge.
const (
	False = 0
	True  = 1
)

type node struct {
	level int
	low   int
	high  int
}

// Diagram is a single-use reduced ordered BDD over a fixed variable count.
type Diagram struct {
	variables int
	nodes     []node
	unique    map[node]int
	andCache  map[[2]int]int
	nodesize  int
	cachesize int
}

func New(variables, nodesize, cachesize int) *Diagram {
	return &Diagram{
		variables: variables,
		nodes: []node{
			{level: variables},
			{level: variables},
		},
		unique:    make(map[node]int),
		andCache:  make(map[[2]int]int),
		nodesize:  nodesize,
		cachesize: cachesize,
	}
}

// Variables returns the number of variables the diagram ranges over.
func (d *Diagram) Variables() int {
	return d.variables
}

// Size returns the number of allocated nodes, terminals included.
func (d *Diagram) Size() int {
	return len(d.nodes)
}

// Level returns the 0-based variable position tested at the node; terminals
// report the variable count.
func (d *Diagram) Level(id int) int {
	return d.nodes[id].level
}

// Low returns the child followed when the node's variable is false.
func (d *Diagram) Low(id int) int {
	return d.nodes[id].low
}

// High returns the child followed when the node's variable is true.
func (d *Diagram) High(id int) int {
	return d.nodes[id].high
}

// Compile conjoins the model's clauses in model order and returns the root.
// The model must already be validated.
func (d *Diagram) Compile(model *cnf.Model) (int, error) {
	root := True
	for _, clause := range model.Clauses() {
		clauseRoot, err := d.clause(clause)
		if err != nil {
			return False, fmt.Errorf("compiling clause: %w", err)
		}
		root, err = d.and(root, clauseRoot)
		if err != nil {
			return False, fmt.Errorf("conjoining clause: %w", err)
		}
	}
	return root, nil
}

// mk returns the canonical node (level, low, high), enforcing the reduction
// rules: redundant tests collapse, structurally equal nodes are shared.
func (d *Diagram) mk(level, low, high int) (int, error) {
	if low == high {
		return low, nil
	}
	candidate := node{level: level, low: low, high: high}
	if id, ok := d.unique[candidate]; ok {
		return id, nil
	}
	if len(d.nodes) >= d.nodesize {
		return False, fmt.Errorf("%w: diagram exceeds %d nodes", ErrResourceExhausted, d.nodesize)
	}
	id := len(d.nodes)
	d.nodes = append(d.nodes, candidate)
	d.unique[candidate] = id
	return id, nil
}

// clause compiles a single disjunction into a diagram chain, bottom-up from
// its deepest literal. A clause containing a variable in both polarities is
// a tautology.
func (d *Diagram) clause(clause cnf.Clause) (int, error) {
	literals := slices.Clone(clause)
	slices.SortFunc(literals, func(a, b int) int {
		return variableOf(a) - variableOf(b)
	})

	root := False
	for i := len(literals) - 1; i >= 0; i-- {
		literal := literals[i]
		if i > 0 && variableOf(literals[i-1]) == variableOf(literal) {
			if literals[i-1] != literal {
				return True, nil
			}
			continue
		}

		var err error
		level := variableOf(literal) - 1
		if literal > 0 {
			root, err = d.mk(level, root, True)
		} else {
			root, err = d.mk(level, True, root)
		}
		if err != nil {
			return False, err
		}
	}
	return root, nil
}

// and computes the conjunction of two diagram roots.
func (d *Diagram) and(a, b int) (int, error) {
	if a == False || b == False {
		return False, nil
	}
	if a == True {
		return b, nil
	}
	if b == True || a == b {
		return a, nil
	}

	key := [2]int{min(a, b), max(a, b)}
	if result, ok := d.andCache[key]; ok {
		return result, nil
	}

	na, nb := d.nodes[a], d.nodes[b]
	level := min(na.level, nb.level)
	lowA, highA := a, a
	if na.level == level {
		lowA, highA = na.low, na.high
	}
	lowB, highB := b, b
	if nb.level == level {
		lowB, highB = nb.low, nb.high
	}

	low, err := d.and(lowA, lowB)
	if err != nil {
		return False, err
	}
	high, err := d.and(highA, highB)
	if err != nil {
		return False, err
	}
	result, err := d.mk(level, low, high)
	if err != nil {
		return False, err
	}

	if len(d.andCache) >= d.cachesize {
		d.andCache = make(map[[2]int]int)
	}
	d.andCache[key] = result
	return result, nil
}

func variableOf(literal int) int {
	if literal < 0 {
		return -literal
	}
	return literal
}
