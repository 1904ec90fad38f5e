package main

import (
	"fmt"
	"log"

	"github.com/samber/lo"

	"kernelset/pkg/cnf"
	"kernelset/pkg/count"
	"kernelset/pkg/graph"
	"kernelset/pkg/optim"
	"kernelset/pkg/sat"
	"kernelset/pkg/weight"
)

const CycleSize = 100

func main() {
	g := graph.Cycle(CycleSize)

	independent, err := cnf.BuildIndependentSetModel(g)
	if err != nil {
		log.Fatalf("cannot build independent-set model: %v", err)
	}
	kernel, err := cnf.BuildKernelModel(g)
	if err != nil {
		log.Fatalf("cannot build kernel model: %v", err)
	}

	counter := count.New()
	independentSets, err := counter.Count(independent)
	if err != nil {
		log.Fatalf("cannot count independent sets: %v", err)
	}
	kernels, err := counter.Count(kernel)
	if err != nil {
		log.Fatalf("cannot count kernels: %v", err)
	}

	fmt.Printf("Independent sets of the %d-cycle: %v\n", CycleSize, independentSets)
	fmt.Printf("Kernels of the %d-cycle: %v\n", CycleSize, kernels)

	weights := weight.Vector(g, weight.ThueMorse)
	optimizer := optim.New(optim.Presolve(sat.NewGophersatSolver()))
	assignment, value, err := optimizer.Optimize(kernel, weights)
	if err != nil {
		log.Fatalf("cannot optimize kernel model: %v", err)
	}
	if !kernel.Satisfies(assignment) {
		log.Fatal("optimizer returned an assignment violating the model")
	}

	vars := kernel.VarMap()
	selected := lo.FilterMap(lo.Range(CycleSize), func(i int, _ int) (int, bool) {
		return vars.Vertex(i + 1), assignment[i]
	})
	negative := lo.Filter(selected, func(vertex int, _ int) bool {
		return weight.ThueMorse(vertex) < 0
	})

	fmt.Printf("Best kernel weight (Thue-Morse signs): %d\n", value)
	fmt.Printf("Selected vertices (%d): %v\n", len(selected), selected)
	fmt.Printf("Selected vertices with negative weight (%d): %v\n", len(negative), negative)
}
