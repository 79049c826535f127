// Command sspp answers the existential percentile query — does some
// strategy reach T from s0 within accumulated weight l with probability
// at least beta? — for an MDP loaded from a YAML file. On a "yes" answer
// it exports the unfolded MDP and its strategy to a Graphviz file.
//
// Usage:
//
//	sspp <mdp.yaml> s0 l beta t1 [t2 ...]
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mdplp/lpbridge"
	"github.com/katalvlaran/mdplp/mdpdot"
	"github.com/katalvlaran/mdplp/mdpio"
	"github.com/katalvlaran/mdplp/sspp"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 5 {
		log.Println("usage: sspp <mdp.yaml> s0 l beta t1 [t2 ...]")

		return 1
	}

	path := args[0]
	m, err := mdpio.LoadFile(path)
	if err != nil {
		log.Printf("load %s: %v", path, err)

		return 1
	}

	s0, err := m.StateIndex(args[1])
	if err != nil {
		log.Printf("resolve s0: %v", err)

		return 1
	}

	l, err := strconv.Atoi(args[2])
	if err != nil {
		log.Printf("parse l: %v", err)

		return 1
	}

	beta, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		log.Printf("parse beta: %v", err)

		return 1
	}

	targets, err := m.Targets(args[4:]...)
	if err != nil {
		log.Printf("resolve targets: %v", err)

		return 1
	}

	d, err := sspp.Decide(m, s0, targets, l, beta)
	if err != nil {
		var lpErr *lpbridge.ErrLpFailure
		if errors.As(err, &lpErr) {
			log.Printf("lp solve failed: %v", err)

			return 2
		}
		log.Printf("decide: %v", err)

		return 1
	}

	fmt.Printf("reachable = %v (Pr = %.6f, beta = %.6f)\n", d.Reachable, d.Prob, beta)
	if !d.Reachable {
		return 0
	}

	dotPath := strings.TrimSuffix(path, ".yaml") + ".sspp.dot"
	f, err := os.Create(dotPath)
	if err != nil {
		log.Printf("create %s: %v", dotPath, err)

		return 1
	}
	defer f.Close()

	if err := mdpdot.Write(f, d.Unfolded.MDP, mdpdot.WithStrategy(d.Strategy)); err != nil {
		log.Printf("write %s: %v", dotPath, err)

		return 1
	}

	return 0
}
