// Package optim finds a satisfying assignment of a CNF model maximizing a
// linear signed weight over the variables set to true. The model is compiled
// into the same reduced decision diagram the counter uses; the optimum is
// then an exact maximum-weight traversal, so the astronomically large
// feasible sets of cycle models are never enumerated.
package optim

import (
	"errors"
	"fmt"
	"math"

	"kernelset/internal/bdd"
	"kernelset/pkg/cnf"
	"kernelset/pkg/sat"
)

// ErrUnsatisfiable is reported when no assignment satisfies the model.
var ErrUnsatisfiable = errors.New("model is unsatisfiable")

// ErrResourceExhausted is reported when the diagram grows past the
// configured node limit. No partial optimum is ever returned.
var ErrResourceExhausted = bdd.ErrResourceExhausted

const (
	defaultNodesize  = 1 << 21
	defaultCachesize = 1 << 16
)

// Optimizer is a reusable configuration for weighted optimization. An
// Optimizer holds no state between calls; concurrent Optimize calls are
// independent.
type Optimizer struct {
	nodesize  int
	cachesize int
	presolver sat.Solver
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// Nodesize bounds the number of diagram nodes a single Optimize call may
// allocate. Exceeding it fails the call with ErrResourceExhausted.
func Nodesize(n int) Option {
	return func(o *Optimizer) {
		o.nodesize = n
	}
}

// Cachesize bounds the diagram's operation cache.
func Cachesize(n int) Option {
	return func(o *Optimizer) {
		o.cachesize = n
	}
}

// Presolve installs a SAT backend that decides satisfiability before the
// diagram is built, so unsatisfiable models fail fast. It never changes the
// reported optimum.
func Presolve(solver sat.Solver) Option {
	return func(o *Optimizer) {
		o.presolver = solver
	}
}

func New(options ...Option) *Optimizer {
	optimizer := &Optimizer{
		nodesize:  defaultNodesize,
		cachesize: defaultCachesize,
	}
	for _, option := range options {
		option(optimizer)
	}
	return optimizer
}

// Optimize returns an assignment satisfying the model that maximizes the
// sum of weights over true variables, together with that sum. Among equal
// optima it returns the lexicographically smallest assignment in variable
// order (false before true), so repeated calls are identical.
func (o *Optimizer) Optimize(model *cnf.Model, weights []int64) (cnf.Assignment, int64, error) {
	if err := model.Validate(); err != nil {
		return nil, 0, err
	}
	if len(weights) != model.Variables() {
		return nil, 0, fmt.Errorf("%w: weight vector covers %d variables, model declares %d",
			cnf.ErrModel, len(weights), model.Variables())
	}

	if o.presolver != nil {
		assignment, err := o.presolver.Solve(model)
		if err != nil {
			return nil, 0, fmt.Errorf("presolve: %w", err)
		}
		if assignment == nil {
			return nil, 0, ErrUnsatisfiable
		}
	}

	diagram := bdd.New(model.Variables(), o.nodesize, o.cachesize)
	root, err := diagram.Compile(model)
	if err != nil {
		return nil, 0, err
	}
	if root == bdd.False {
		return nil, 0, ErrUnsatisfiable
	}

	assignment := maximize(diagram, root, weights)

	var value int64
	for i, selected := range assignment {
		if selected {
			value += weights[i]
		}
	}
	return assignment, value, nil
}

// Optimize is a convenience wrapper using default limits and no presolve.
func Optimize(model *cnf.Model, weights []int64) (cnf.Assignment, int64, error) {
	return New().Optimize(model, weights)
}

// maximize walks the diagram and extracts the lexicographically smallest
// maximum-weight satisfying assignment. Per-node optima are memoized; free
// variables (levels no node on the path tests) contribute their weight
// exactly when it is positive.
func maximize(d *bdd.Diagram, root int, weights []int64) cnf.Assignment {
	// freeBest[i] is the best value obtainable from the free variables at
	// levels < i; gaps between diagram levels are differences of it.
	freeBest := make([]int64, len(weights)+1)
	for i, w := range weights {
		freeBest[i+1] = freeBest[i] + max(w, 0)
	}
	gap := func(from, to int) int64 {
		return freeBest[to] - freeBest[from]
	}

	memo := make(map[int]int64)
	var best func(id int) int64
	best = func(id int) int64 {
		if id == bdd.True {
			return 0
		}
		if value, ok := memo[id]; ok {
			return value
		}

		level := d.Level(id)
		low, high := d.Low(id), d.High(id)
		value := int64(math.MinInt64)
		if low != bdd.False {
			value = gap(level+1, d.Level(low)) + best(low)
		}
		if high != bdd.False {
			value = max(value, weights[level]+gap(level+1, d.Level(high))+best(high))
		}

		memo[id] = value
		return value
	}

	assignment := make(cnf.Assignment, d.Variables())
	current := root
	for level := 0; level < d.Variables(); level++ {
		if level < d.Level(current) {
			// Free variable: select it only when that strictly improves the
			// sum, which also keeps the assignment lexicographically minimal.
			assignment[level] = weights[level] > 0
			continue
		}

		low, high := d.Low(current), d.High(current)
		if low != bdd.False && gap(level+1, d.Level(low))+best(low) == best(current) {
			current = low
		} else {
			assignment[level] = true
			current = high
		}
	}
	return assignment
}
