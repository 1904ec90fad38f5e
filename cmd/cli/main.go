package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/samber/lo"

	"kernelset/internal/input"
	"kernelset/pkg/count"
	"kernelset/pkg/optim"
	"kernelset/pkg/sat"
)

var (
	validSolvers = []string{"gophersat", "gini", "none"}
	solvers      = map[string]func() sat.Solver{
		"gophersat": sat.NewGophersatSolver,
		"gini":      sat.NewGiniSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the JSON problem file")
	solverPtr := flag.String("solver", "gophersat", "SAT backend used to presolve satisfiability before optimizing. Allowed values are: \"gophersat\", \"gini\", \"none\", where \"gophersat\" is the default")
	countPtr := flag.Bool("count", true, "Count the model's satisfying assignments")
	optimizePtr := flag.Bool("optimize", true, "Maximize the problem's weight function over the model")
	nodesPtr := flag.Int("nodes", 1<<21, "Node budget for the decision diagram")
	flag.Parse()

	filePath := *filePathPtr
	solverStr := strings.ToLower(*solverPtr)

	if filePath == "" {
		log.Fatal("a problem file must be provided via -file")
	}
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("invalid solver: %v", solverStr)
	}

	problem, err := input.FromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse problem file: %v", err)
	}

	g, err := problem.Graph()
	if err != nil {
		log.Fatalf("invalid problem graph: %v", err)
	}
	model, err := problem.BuildModel(g)
	if err != nil {
		log.Fatalf("cannot build model: %v", err)
	}

	fmt.Printf("Graph: %d vertices, %d edges; model: %d variables, %d clauses\n",
		g.Order(), len(g.Edges()), model.Variables(), len(model.Clauses()))

	if *countPtr {
		total, err := count.New(count.Nodesize(*nodesPtr)).Count(model)
		if err != nil {
			log.Fatalf("cannot count: %v", err)
		}
		fmt.Printf("Satisfying assignments: %v\n", total)
	}

	if *optimizePtr {
		weights, err := problem.WeightVector(g)
		if err != nil {
			log.Fatalf("cannot resolve weights: %v", err)
		}

		options := []optim.Option{optim.Nodesize(*nodesPtr)}
		if constructor, ok := solvers[solverStr]; ok {
			options = append(options, optim.Presolve(constructor()))
		}

		assignment, value, err := optim.New(options...).Optimize(model, weights)
		if err != nil {
			log.Fatalf("cannot optimize: %v", err)
		}

		vars := model.VarMap()
		selected := lo.FilterMap(lo.Range(model.Variables()), func(i int, _ int) (int, bool) {
			return vars.Vertex(i + 1), assignment[i]
		})
		fmt.Printf("Optimal value: %d\n", value)
		fmt.Printf("Selected vertices (%d): %v\n", len(selected), selected)
	}
}
