// Command sspe prints the minimum expected accumulated weight to reach T
// for every state of an MDP loaded from a YAML file, and exports the
// minimizing strategy to a Graphviz file.
//
// With --threshold, it additionally reports feasibility (cost <= threshold)
// for --from's state, or for every state when --from is omitted, and only
// exports the Graphviz file when that check passes.
//
// Usage:
//
//	sspe <mdp.yaml> [--threshold l] [--from s] t1 [t2 ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/mdplp/lpbridge"
	"github.com/katalvlaran/mdplp/mdpdot"
	"github.com/katalvlaran/mdplp/mdpio"
	"github.com/katalvlaran/mdplp/sspe"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sspe", flag.ContinueOnError)
	threshold := fs.Float64("threshold", math.Inf(1), "report feasibility of a cost <= threshold, from --from or from every state")
	from := fs.String("from", "", "state name to check --threshold against (all states, if omitted)")
	if len(args) < 1 {
		log.Println("usage: sspe <mdp.yaml> [--threshold l] [--from s] t1 [t2 ...]")

		return 1
	}

	path := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 {
		log.Println("usage: sspe <mdp.yaml> [--threshold l] [--from s] t1 [t2 ...]")

		return 1
	}

	m, err := mdpio.LoadFile(path)
	if err != nil {
		log.Printf("load %s: %v", path, err)

		return 1
	}

	targets, err := m.Targets(rest...)
	if err != nil {
		log.Printf("resolve targets: %v", err)

		return 1
	}

	res, err := sspe.Solve(m, targets)
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
		fmt.Printf("E^min[%s] = %v\n", m.StateName(s), res.X[s])
	}

	feasible := true
	if !math.IsInf(*threshold, 1) {
		if *from != "" {
			s, err := m.StateIndex(*from)
			if err != nil {
				log.Printf("resolve --from: %v", err)

				return 1
			}
			feasible = res.X[s] <= *threshold
			fmt.Printf("feasible(%s, %.6f) = %v\n", *from, *threshold, feasible)
		} else {
			for s := 0; s < m.NumberOfStates(); s++ {
				ok := res.X[s] <= *threshold
				feasible = feasible && ok
				fmt.Printf("feasible(%s, %.6f) = %v\n", m.StateName(s), *threshold, ok)
			}
		}
	}

	if !feasible {
		return 0
	}

	dotPath := strings.TrimSuffix(path, ".yaml") + ".sspe.dot"
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
