package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"mad-life/internal/app"
	"mad-life/internal/survey"
)

func main() {
	width := flag.Int("w", 32, "grid width in cells")
	height := flag.Int("h", 24, "grid height in cells")
	densityList := flag.String("density", "0.15,0.25,0.35,0.5", "comma separated initial densities")
	seedCount := flag.Int("seeds", 16, "seeds per density")
	maxGen := flag.Int("max-gen", 2000, "generation cap per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if err := app.ConfigureLogging(*logLevel, os.Stderr); err != nil {
		log.WithError(err).Fatal("configure logging")
	}
	densities, err := parseDensities(*densityList)
	if err != nil {
		log.WithError(err).Fatal("parse densities")
	}
	seeds := make([]int64, *seedCount)
	for i := range seeds {
		seeds[i] = int64(i + 1)
	}

	scenarios := survey.Grid(*width, *height, densities, seeds)
	log.WithFields(log.Fields{
		"scenarios": len(scenarios),
		"workers":   *workers,
		"max_gen":   *maxGen,
	}).Info("sweeping soups")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := survey.Sweep(ctx, scenarios, *workers, *maxGen)
	if err != nil {
		log.WithError(err).Fatal("sweep")
	}
	printSummary(results, densities, time.Since(start))
}

func parseDensities(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "density %q", field)
		}
		if d < 0 || d > 1 {
			return nil, errors.Errorf("density %v outside [0,1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("no densities given")
	}
	return out, nil
}

type densityStats struct {
	counts  map[survey.Outcome]int
	gens    uint64
	longest survey.Result
}

func printSummary(results []survey.Result, densities []float64, elapsed time.Duration) {
	stats := make(map[float64]*densityStats, len(densities))
	for _, d := range densities {
		stats[d] = &densityStats{counts: map[survey.Outcome]int{}}
	}
	for _, res := range results {
		st := stats[res.Scenario.Density]
		st.counts[res.Outcome]++
		st.gens += res.Generations
		if res.Generations > st.longest.Generations {
			st.longest = res
		}
	}

	fmt.Printf("\nSoup survey (%d soups, elapsed %s):\n", len(results), elapsed.Round(time.Millisecond))
	fmt.Printf("%8s %8s %8s %8s %10s %10s %9s\n", "density", "extinct", "still", "osc", "unsettled", "avg gens", "longest")
	for _, d := range densities {
		st := stats[d]
		total := st.counts[survey.Extinct] + st.counts[survey.Still] + st.counts[survey.Oscillating] + st.counts[survey.Unsettled]
		avg := 0.0
		if total > 0 {
			avg = float64(st.gens) / float64(total)
		}
		fmt.Printf("%8.2f %8d %8d %8d %10d %10.1f %9d\n", d,
			st.counts[survey.Extinct], st.counts[survey.Still], st.counts[survey.Oscillating], st.counts[survey.Unsettled],
			avg, st.longest.Generations)
	}
}
