// Command simulate plays seeded games headlessly and reports how long an
// automatic drafter survives the rent schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	metricsinmem "rentspin/internal/adapter/metrics/inmemory"
	"rentspin/internal/adapter/repo/memory"
	"rentspin/internal/app/play"
	"rentspin/internal/config"
	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"

	"go.uber.org/zap"
)

type options struct {
	Games    int
	MaxSpins int
	Seed     uint64
	Strategy string
}

type report struct {
	Games       int
	Survived    int
	TotalSpins  int
	RentsPaid   int
	HighestRent int
	KPI         metricsinmem.Snapshot
}

func main() {
	var opts options
	flag.IntVar(&opts.Games, "games", 1000, "number of games to play")
	flag.IntVar(&opts.MaxSpins, "max-spins", 100, "stop a game that survives this many spins")
	flag.Uint64Var(&opts.Seed, "seed", 1, "random seed")
	flag.StringVar(&opts.Strategy, "strategy", "greedy", "draft strategy: greedy, random or skip")
	configPath := flag.String("config", os.Getenv("RENTSPIN_CONFIG"), "tuning yaml file")
	catalogPath := flag.String("catalog", os.Getenv("RENTSPIN_CATALOG"), "catalog yaml file")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath, *catalogPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	rep, err := simulate(context.Background(), cfg, opts)
	if err != nil {
		logger.Fatal("simulate", zap.Error(err))
	}
	printReport(os.Stdout, opts, rep)
}

func simulate(ctx context.Context, cfg config.Config, opts options) (report, error) {
	pick, err := drafter(opts.Strategy, cfg.Catalog)
	if err != nil {
		return report{}, err
	}
	store := memory.NewStore()
	kpi := metricsinmem.NewRecorder()
	src := slot.NewSeededSource(opts.Seed)
	uc := play.UseCase{
		TxManager: memory.NewTxManager(store),
		Games:     memory.NewGameRepo(store),
		Events:    memory.NewEventRepo(store),
		Ledger:    memory.NewSpinLedger(store),
		Metrics:   kpi,
		Machine:   economy.NewMachine(cfg.Catalog, slot.DefaultRules(), cfg.Tuning, src),
		NewID:     sequentialIDs("sim"),
	}

	rep := report{Games: opts.Games}
	for i := 0; i < opts.Games; i++ {
		created, err := uc.NewGame(ctx)
		if err != nil {
			return report{}, err
		}
		g := created.Game
		spins := 0
		for spins < opts.MaxSpins && !g.Over() {
			spun, err := uc.Spin(ctx, play.Request{GameID: g.ID})
			if err != nil {
				return report{}, err
			}
			if spun.Game.Phase != economy.PhaseDrafting {
				return report{}, fmt.Errorf("game %s stuck in phase %s", g.ID, spun.Game.Phase)
			}
			spins++
			drafted, err := uc.Draft(ctx, play.DraftRequest{GameID: g.ID, SymbolID: pick(spun.Game.Offers, src)})
			if err != nil {
				return report{}, err
			}
			for _, e := range drafted.Events {
				if e.Type == economy.EventRentPaid {
					rep.RentsPaid++
				}
			}
			g = drafted.Game
		}
		if !g.Over() {
			rep.Survived++
		}
		if g.Rent > rep.HighestRent {
			rep.HighestRent = g.Rent
		}
		rep.TotalSpins += spins
	}
	rep.KPI = kpi.Snapshot()
	return rep, nil
}

type pickFunc func(offers []string, src slot.RandomSource) string

func drafter(strategy string, catalog symbol.Catalog) (pickFunc, error) {
	switch strategy {
	case "skip":
		return func([]string, slot.RandomSource) string { return symbol.SkipID }, nil
	case "random":
		return func(offers []string, src slot.RandomSource) string {
			if len(offers) == 0 {
				return symbol.SkipID
			}
			return offers[slot.IntN(src, len(offers))]
		}, nil
	case "greedy":
		return func(offers []string, _ slot.RandomSource) string {
			best, bestValue := symbol.SkipID, -1
			for _, id := range offers {
				if d, err := catalog.Lookup(id); err == nil && d.BaseValue > bestValue {
					best, bestValue = id, d.BaseValue
				}
			}
			return best
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func printReport(w io.Writer, opts options, rep report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "strategy\t%s\n", opts.Strategy)
	fmt.Fprintf(tw, "games\t%d\n", rep.Games)
	fmt.Fprintf(tw, "survived %d spins\t%d (%.1f%%)\n", opts.MaxSpins, rep.Survived, percent(rep.Survived, rep.Games))
	fmt.Fprintf(tw, "avg spins\t%.2f\n", ratio(rep.TotalSpins, rep.Games))
	fmt.Fprintf(tw, "rents paid\t%d\n", rep.RentsPaid)
	fmt.Fprintf(tw, "highest rent\t%d\n", rep.HighestRent)
	fmt.Fprintf(tw, "avg payout\t%.2f\n", rep.KPI.PayoutAvg)
	fmt.Fprintf(tw, "max payout\t%d\n", rep.KPI.PayoutMax)
	fmt.Fprintf(tw, "symbols consumed\t%d\n", rep.KPI.ConsumptionTotal)
	_ = tw.Flush()
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func percent(n, d int) float64 { return 100 * ratio(n, d) }
