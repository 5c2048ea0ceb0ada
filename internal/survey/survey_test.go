package survey

import (
	"context"
	"errors"
	"testing"

	"mad-life/internal/life"
)

func TestRunFullDensity(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		outcome Outcome
		gens    uint64
		period  uint64
		final   int
	}{
		{name: "block", w: 2, h: 2, outcome: Still, gens: 1, period: 1, final: 4},
		{name: "square dies", w: 4, h: 4, outcome: Extinct, gens: 2},
		{name: "bar dies", w: 5, h: 1, outcome: Extinct, gens: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Run(Scenario{Width: tc.w, Height: tc.h, Density: 1, Seed: 1}, 100)
			if res.Outcome != tc.outcome || res.Generations != tc.gens || res.Period != tc.period || res.Final != tc.final {
				t.Fatalf("Run = %+v, expected outcome=%s gens=%d period=%d final=%d", res, tc.outcome, tc.gens, tc.period, tc.final)
			}
			if res.Initial != tc.w*tc.h {
				t.Fatalf("Initial = %d, expected %d", res.Initial, tc.w*tc.h)
			}
		})
	}
}

func TestSettleBlinkerOscillates(t *testing.T) {
	board := life.NewBoard(5, 5)
	board.SetCell(1, 2, true)
	board.SetCell(2, 2, true)
	board.SetCell(3, 2, true)
	res := settle(board, 50)
	if res.Outcome != Oscillating || res.Period != 2 || res.Generations != 2 {
		t.Fatalf("settle = %+v, expected a period-2 oscillator found at generation 2", res)
	}
}

func TestSettleStopsAtCap(t *testing.T) {
	board := life.NewBoard(40, 40)
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		board.SetCell(c[0], c[1], true)
	}
	res := settle(board, 8)
	if res.Outcome != Unsettled || res.Generations != 8 || res.Final != 5 {
		t.Fatalf("settle = %+v, expected an unsettled glider after 8 generations", res)
	}
}

func TestRunEmptySoup(t *testing.T) {
	res := Run(Scenario{Width: 8, Height: 8, Density: 0, Seed: 9}, 10)
	if res.Outcome != Extinct || res.Generations != 0 {
		t.Fatalf("Run = %+v, expected immediate extinction", res)
	}
}

func TestSweepKeepsScenarioOrder(t *testing.T) {
	scenarios := Grid(12, 12, []float64{0.2, 0.35}, []int64{1, 2, 3})
	if len(scenarios) != 6 {
		t.Fatalf("Grid produced %d scenarios, expected 6", len(scenarios))
	}
	results, err := Sweep(context.Background(), scenarios, 3, 200)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	for i, res := range results {
		if res.Scenario != scenarios[i] {
			t.Fatalf("result %d is for %s, expected %s", i, res.Scenario, scenarios[i])
		}
		if want := Run(scenarios[i], 200); res != want {
			t.Fatalf("result %d = %+v, expected deterministic %+v", i, res, want)
		}
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	if _, err := Sweep(context.Background(), Grid(4, 4, []float64{0.5}, []int64{1}), 1, 0); err == nil {
		t.Fatal("expected an error for a zero generation cap")
	}
	if _, err := Sweep(context.Background(), []Scenario{{Width: 0, Height: 3}}, 1, 10); err == nil {
		t.Fatal("expected an error for an empty grid")
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, Grid(8, 8, []float64{0.3}, []int64{1, 2}), 1, 50)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sweep error = %v, expected context.Canceled", err)
	}
}

func TestHistoryComparesCellsOnHashHit(t *testing.T) {
	h := newHistory()
	a := []bool{true, false, false, true}
	b := []bool{false, true, true, false}
	h.record(42, 3, a)

	if _, ok := h.lookup(42, b); ok {
		t.Fatal("different cells sharing a hash were treated as a repeat")
	}
	h.record(42, 5, b)
	if gen, ok := h.lookup(42, b); !ok || gen != 5 {
		t.Fatalf("lookup(b) = %d,%v, expected 5,true", gen, ok)
	}
	if gen, ok := h.lookup(42, append([]bool(nil), a...)); !ok || gen != 3 {
		t.Fatalf("lookup(a) = %d,%v, expected 3,true", gen, ok)
	}
	if _, ok := h.lookup(7, a); ok {
		t.Fatal("lookup matched under a different hash")
	}
}
