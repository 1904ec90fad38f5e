package weight

import (
	"math/bits"

	"github.com/samber/lo"

	"kernelset/pkg/graph"
)

// Function maps a vertex to a signed integer weight.
type Function func(vertex int) int64

// ThueMorse assigns +1 to vertices whose index has an even number of set
// bits and -1 otherwise.
func ThueMorse(vertex int) int64 {
	if bits.OnesCount(uint(vertex))%2 == 0 {
		return 1
	}
	return -1
}

// Unit assigns weight 1 to every vertex, turning optimization into a
// maximum-cardinality search.
func Unit(int) int64 {
	return 1
}

// Vector evaluates fn over the graph's vertices, in vertex order. The
// resulting slice is aligned with the variable numbering of models built
// from the same graph.
func Vector(g *graph.Graph, fn Function) []int64 {
	return lo.Map(g.Vertices(), func(vertex int, _ int) int64 {
		return fn(vertex)
	})
}
