package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"rentspin/internal/config"
	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

func defaultConfig() config.Config {
	return config.Config{Tuning: economy.DefaultTuning(), Catalog: symbol.DefaultCatalog()}
}

func TestSimulate_IsReproducible(t *testing.T) {
	opts := options{Games: 20, MaxSpins: 30, Seed: 42, Strategy: "greedy"}
	a, err := simulate(context.Background(), defaultConfig(), opts)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	b, err := simulate(context.Background(), defaultConfig(), opts)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if a != b {
		t.Fatalf("same seed gave different reports:\n%+v\n%+v", a, b)
	}
	if a.KPI.SpinTotal != uint64(a.TotalSpins) {
		t.Fatalf("kpi spins mismatch: got=%d want=%d", a.KPI.SpinTotal, a.TotalSpins)
	}
	if a.Survived > a.Games || a.TotalSpins > opts.Games*opts.MaxSpins {
		t.Fatalf("report out of range: %+v", a)
	}
}

func TestSimulate_SkipStrategyLosesToRent(t *testing.T) {
	// The starting deck alone cannot out-earn a rent schedule this steep.
	cfg := defaultConfig()
	cfg.Tuning.StartingRent = 1000
	rep, err := simulate(context.Background(), cfg, options{Games: 5, MaxSpins: 50, Seed: 7, Strategy: "skip"})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if rep.Survived != 0 {
		t.Fatalf("survived mismatch: got=%d want=0", rep.Survived)
	}
	if got, want := rep.TotalSpins, 5*cfg.Tuning.SpinsPerCycle; got != want {
		t.Fatalf("spins mismatch: got=%d want=%d", got, want)
	}
	if rep.KPI.GameOverTotal != 5 {
		t.Fatalf("game over count mismatch: got=%d want=5", rep.KPI.GameOverTotal)
	}
}

func TestSimulate_RejectsUnknownStrategy(t *testing.T) {
	if _, err := simulate(context.Background(), defaultConfig(), options{Games: 1, MaxSpins: 1, Strategy: "psychic"}); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestGreedyDrafterPicksHighestValue(t *testing.T) {
	pick, err := drafter("greedy", symbol.DefaultCatalog())
	if err != nil {
		t.Fatalf("drafter failed: %v", err)
	}
	if got, want := pick([]string{"cat", "diamond", "coin"}, slot.NewSeededSource(1)), "diamond"; got != want {
		t.Fatalf("pick mismatch: got=%s want=%s", got, want)
	}
	if got := pick(nil, slot.NewSeededSource(1)); got != symbol.SkipID {
		t.Fatalf("empty offers should skip, got=%s", got)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, options{Strategy: "greedy", MaxSpins: 10}, report{Games: 4, Survived: 1, TotalSpins: 22})
	out := buf.String()
	for _, want := range []string{"greedy", "25.0%", "5.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
