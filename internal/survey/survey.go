// Package survey runs randomly seeded boards to completion and classifies how
// each one settles.
package survey

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"mad-life/internal/life"
	"mad-life/pkg/core"
)

// Outcome classifies how a soup ended.
type Outcome int

const (
	// Unsettled means the generation cap was reached first.
	Unsettled Outcome = iota
	// Extinct means every cell died.
	Extinct
	// Still means the board stopped changing.
	Still
	// Oscillating means the board returned to an earlier state.
	Oscillating
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Still:
		return "still"
	case Oscillating:
		return "oscillating"
	default:
		return "unsettled"
	}
}

// Scenario describes one random soup.
type Scenario struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d density=%.2f seed=%d", s.Width, s.Height, s.Density, s.Seed)
}

// Result records how a scenario settled.
type Result struct {
	Scenario Scenario
	Outcome  Outcome
	// Generations is the generation at which the outcome was detected.
	Generations    uint64
	Period         uint64
	Initial        int
	Final          int
	PeakPopulation int
}

// Run steps the scenario until it settles or maxGenerations is reached.
func Run(s Scenario, maxGenerations int) Result {
	board := life.NewBoard(s.Width, s.Height)
	board.Randomize(core.NewRNG(s.Seed), s.Density)
	res := settle(board, maxGenerations)
	res.Scenario = s
	return res
}

func settle(board *life.Board, maxGenerations int) Result {
	res := Result{Initial: board.Population(), PeakPopulation: board.Population()}
	seen := newHistory()
	seen.record(board.Hash(), 0, board.Snapshot())
	for step := 0; step < maxGenerations; step++ {
		if board.Population() == 0 {
			res.Outcome = Extinct
			break
		}
		board.AdvanceGeneration()
		if p := board.Population(); p > res.PeakPopulation {
			res.PeakPopulation = p
		}
		gen := board.Generation()
		hash, cells := board.Hash(), board.Snapshot()
		if prev, ok := seen.lookup(hash, cells); ok {
			res.Period = gen - prev
			res.Outcome = Oscillating
			if res.Period == 1 {
				res.Outcome = Still
			}
			break
		}
		seen.record(hash, gen, cells)
	}
	if res.Outcome == Unsettled && board.Population() == 0 {
		res.Outcome = Extinct
	}
	res.Generations = board.Generation()
	res.Final = board.Population()
	return res
}

// Sweep runs every scenario on at most workers goroutines and returns the
// results in scenario order. Each board is stepped on a single goroutine.
func Sweep(ctx context.Context, scenarios []Scenario, workers, maxGenerations int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	if maxGenerations <= 0 {
		return nil, errors.Errorf("max generations %d must be positive", maxGenerations)
	}
	for i, s := range scenarios {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, errors.Errorf("scenario %d: grid %dx%d must be positive", i, s.Width, s.Height)
		}
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "scenario %s", s)
			}
			results[i] = Run(s, maxGenerations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Grid expands every density and seed combination into scenarios.
func Grid(width, height int, densities []float64, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, seed := range seeds {
			out = append(out, Scenario{Width: width, Height: height, Density: d, Seed: seed})
		}
	}
	return out
}
