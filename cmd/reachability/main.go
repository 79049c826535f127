// Command reachability prints Pr^max(reach T) for every state of an MDP
// loaded from a YAML file, and exports the unfolded-free maximizing
// strategy to a Graphviz file alongside it.
//
// Usage:
//
//	reachability <mdp.yaml> t1 [t2 ...]
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/mdplp/lpbridge"
	"github.com/katalvlaran/mdplp/mdpdot"
	"github.com/katalvlaran/mdplp/mdpio"
	"github.com/katalvlaran/mdplp/reachsolve"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		log.Println("usage: reachability <mdp.yaml> t1 [t2 ...]")

		return 1
	}

	path := args[0]
	m, err := mdpio.LoadFile(path)
	if err != nil {
		log.Printf("load %s: %v", path, err)

		return 1
	}

	targets, err := m.Targets(args[1:]...)
	if err != nil {
		log.Printf("resolve targets: %v", err)

		return 1
	}

	res, err := reachsolve.Solve(m, targets)
	if err != nil {
		var lpErr *lpbridge.ErrLpFailure
		if errors.As(err, &lpErr) {
			log.Printf("lp solve failed: %v", err)

			return 2
		}
		log.Printf("solve: %v", err)

		return 1
	}

	for s := 0; s < m.NumberOfStates(); s++ {
		fmt.Printf("Pr^max[%s] = %.6f\n", m.StateName(s), res.X[s])
	}

	dotPath := strings.TrimSuffix(path, ".yaml") + ".reach.dot"
	f, err := os.Create(dotPath)
	if err != nil {
		log.Printf("create %s: %v", dotPath, err)

		return 1
	}
	defer f.Close()

	if err := mdpdot.Write(f, m, mdpdot.WithStrategy(res.Strategy)); err != nil {
		log.Printf("write %s: %v", dotPath, err)

		return 1
	}

	return 0
}
