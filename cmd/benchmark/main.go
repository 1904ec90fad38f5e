package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"time"

	"kernelset/pkg/cnf"
	"kernelset/pkg/count"
	"kernelset/pkg/graph"
	"kernelset/pkg/optim"
	"kernelset/pkg/weight"
)

func main() {
	maxSizePtr := flag.Int("max", 500, "Largest cycle size to benchmark")
	stepPtr := flag.Int("step", 50, "Cycle size increment between runs")
	flag.Parse()

	fmt.Println("size | independent sets | kernels | best kernel weight | elapsed")
	for size := *stepPtr; size <= *maxSizePtr; size += *stepPtr {
		if size < 3 {
			continue
		}
		start := time.Now()

		independentSets, kernels, err := cycleCounts(size)
		if err != nil {
			log.Fatalf("cannot count %d-cycle: %v", size, err)
		}

		g := graph.Cycle(size)
		kernelModel, err := cnf.BuildKernelModel(g)
		if err != nil {
			log.Fatalf("cannot build kernel model: %v", err)
		}
		_, best, err := optim.Optimize(kernelModel, weight.Vector(g, weight.ThueMorse))
		if err != nil {
			log.Fatalf("cannot optimize %d-cycle: %v", size, err)
		}

		fmt.Printf("%4d | %v | %v | %d | %v\n", size, independentSets, kernels, best, time.Since(start))
	}
}

// cycleCounts returns the independent-set and kernel counts of the n-cycle.
func cycleCounts(n int) (*big.Int, *big.Int, error) {
	g := graph.Cycle(n)

	independent, err := cnf.BuildIndependentSetModel(g)
	if err != nil {
		return nil, nil, err
	}
	kernel, err := cnf.BuildKernelModel(g)
	if err != nil {
		return nil, nil, err
	}

	counter := count.New()
	independentSets, err := counter.Count(independent)
	if err != nil {
		return nil, nil, err
	}
	kernels, err := counter.Count(kernel)
	if err != nil {
		return nil, nil, err
	}
	return independentSets, kernels, nil
}
