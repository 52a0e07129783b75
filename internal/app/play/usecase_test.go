package play

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"rentspin/internal/adapter/repo/memory"
	"rentspin/internal/adapter/scheduler"
	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

type stubMetrics struct {
	spins     int
	payout    int
	rentPaid  int
	gameOvers int
	failures  int
}

func (m *stubMetrics) RecordSpin(payout, _ int) {
	m.spins++
	m.payout += payout
}

func (m *stubMetrics) RecordRentPaid(amount int) { m.rentPaid += amount }
func (m *stubMetrics) RecordGameOver() { m.gameOvers++ }
func (m *stubMetrics) RecordFailure() { m.failures++ }

type fixture struct {
	uc      UseCase
	store   *memory.Store
	ledger  memory.SpinLedger
	metrics *stubMetrics
}

func newFixture(sched ports.Scheduler) fixture {
	store := memory.NewStore()
	ledger := memory.NewSpinLedger(store)
	metrics := &stubMetrics{}
	n := 0
	machine := economy.NewMachine(symbol.DefaultCatalog(), slot.DefaultRules(), economy.DefaultTuning(), slot.NewSeededSource(99))
	return fixture{
		uc: UseCase{
			TxManager: memory.NewTxManager(store),
			Games:     memory.NewGameRepo(store),
			Events:    memory.NewEventRepo(store),
			Ledger:    ledger,
			Metrics:   metrics,
			Scheduler: sched,
			Machine:   machine,
			Now:       func() time.Time { return time.Unix(1700000000, 0) },
			NewID: func() string {
				n++
				return fmt.Sprintf("game-%d", n)
			},
		},
		store:   store,
		ledger:  ledger,
		metrics: metrics,
	}
}

func (f fixture) game(t *testing.T, id string) economy.Game {
	t.Helper()
	var g economy.Game
	err := f.uc.TxManager.RunInTx(context.Background(), func(ctx context.Context) error {
		var err error
		g, err = f.uc.Games.Get(ctx, id)
		return err
	})
	if err != nil {
		t.Fatalf("load game %s: %v", id, err)
	}
	return g
}

func TestUseCase_NewGame(t *testing.T) {
	f := newFixture(nil)
	out, err := f.uc.NewGame(context.Background())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if out.Game.ID != "game-1" || out.Game.Version != 1 || out.Game.Phase != economy.PhaseIdle {
		t.Fatalf("unexpected new game: %+v", out.Game)
	}
	if len(out.Events) != 1 || out.Events[0].Type != economy.EventGameStarted {
		t.Fatalf("expected game_started event, got %+v", out.Events)
	}
	if stored := f.game(t, "game-1"); stored.Coins != 10 {
		t.Fatalf("stored coins mismatch: got=%d want=10", stored.Coins)
	}
}

func TestUseCase_SpinPipelineFollowsScheduler(t *testing.T) {
	sched := scheduler.NewManual()
	f := newFixture(sched)
	ctx := context.Background()
	created, _ := f.uc.NewGame(ctx)
	req := Request{GameID: created.Game.ID}

	first, err := f.uc.Spin(ctx, req)
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if first.Game.Phase != economy.PhaseSpinning {
		t.Fatalf("phase mismatch: got=%s want=%s", first.Game.Phase, economy.PhaseSpinning)
	}
	second, err := f.uc.Spin(ctx, req)
	if err != nil {
		t.Fatalf("second spin: %v", err)
	}
	if len(second.Events) != 0 || second.Game.SpinSeq != first.Game.SpinSeq {
		t.Fatalf("second spin should be a no-op: events=%d seq=%d", len(second.Events), second.Game.SpinSeq)
	}
	if sched.Pending() != 1 {
		t.Fatalf("expected one pending transition, got %d", sched.Pending())
	}

	wantPhases := []economy.Phase{economy.PhaseInteraction, economy.PhaseScoring, economy.PhaseDrafting}
	for _, want := range wantPhases {
		sched.Advance(1500 * time.Millisecond)
		if got := f.game(t, req.GameID).Phase; got != want {
			t.Fatalf("phase mismatch: got=%s want=%s", got, want)
		}
	}

	g := f.game(t, req.GameID)
	if got, want := g.Coins, 10+g.LastOutcome.Payout; got != want {
		t.Fatalf("coins mismatch: got=%d want=%d", got, want)
	}
	if f.metrics.spins != 1 {
		t.Fatalf("expected one recorded spin, got %d", f.metrics.spins)
	}
	spins, _ := f.ledger.ListByGameID(ctx, req.GameID, 0)
	if len(spins) != 1 || spins[0].SpinSeq != g.SpinSeq {
		t.Fatalf("ledger mismatch: %+v", spins)
	}
}

func TestUseCase_RestartInvalidatesPendingTransitions(t *testing.T) {
	sched := scheduler.NewManual()
	f := newFixture(sched)
	ctx := context.Background()
	created, _ := f.uc.NewGame(ctx)
	req := Request{GameID: created.Game.ID}

	if _, err := f.uc.Spin(ctx, req); err != nil {
		t.Fatalf("spin: %v", err)
	}
	restarted, err := f.uc.Restart(ctx, req)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	sched.Advance(10 * time.Second)

	g := f.game(t, req.GameID)
	if g.Phase != economy.PhaseIdle || g.SpinSeq != restarted.Game.SpinSeq {
		t.Fatalf("stale transition applied after restart: phase=%s seq=%d", g.Phase, g.SpinSeq)
	}
	if f.metrics.spins != 0 {
		t.Fatalf("stale spin was scored")
	}
}

func TestUseCase_SpinRunsInlineWithoutScheduler(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	created, _ := f.uc.NewGame(ctx)

	out, err := f.uc.Spin(ctx, Request{GameID: created.Game.ID})
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if out.Game.Phase != economy.PhaseDrafting {
		t.Fatalf("phase mismatch: got=%s want=%s", out.Game.Phase, economy.PhaseDrafting)
	}
	want := []string{economy.EventSpinStarted, economy.EventSpinResolved, economy.EventSpinRevealed, economy.EventSpinScored}
	if len(out.Events) != len(want) {
		t.Fatalf("events mismatch: got=%d want=%d", len(out.Events), len(want))
	}
	for i, e := range out.Events {
		if e.Type != want[i] {
			t.Fatalf("event %d mismatch: got=%s want=%s", i, e.Type, want[i])
		}
	}
	if len(out.Game.Offers) != 3 {
		t.Fatalf("expected 3 offers, got %v", out.Game.Offers)
	}
}

func TestUseCase_DraftPaysRent(t *testing.T) {
	f := newFixture(nil)
	f.store.SeedGame(economy.Game{
		ID:             "g-rent",
		Phase:          economy.PhaseDrafting,
		Coins:          30,
		Rent:           25,
		SpinsUntilRent: 0,
		Deck:           slot.Deck{"coin"},
		Version:        3,
	})

	out, err := f.uc.Draft(context.Background(), DraftRequest{GameID: "g-rent", SymbolID: symbol.SkipID})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if out.Game.Coins != 5 || out.Game.Rent != 50 || out.Game.SpinsUntilRent != 5 {
		t.Fatalf("unexpected economy: %+v", out.Game)
	}
	if out.Game.Version != 4 {
		t.Fatalf("version mismatch: got=%d want=4", out.Game.Version)
	}
	if f.metrics.rentPaid != 25 {
		t.Fatalf("rent metric mismatch: got=%d want=25", f.metrics.rentPaid)
	}
}

func TestUseCase_DraftGameOver(t *testing.T) {
	f := newFixture(nil)
	f.store.SeedGame(economy.Game{ID: "g-broke", Phase: economy.PhaseDrafting, Coins: 3, Rent: 25, Version: 1})

	out, err := f.uc.Draft(context.Background(), DraftRequest{GameID: "g-broke", SymbolID: "cat"})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if !out.Game.Over() || f.metrics.gameOvers != 1 {
		t.Fatalf("expected game over, got phase=%s", out.Game.Phase)
	}
}

func TestUseCase_Errors(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	created, _ := f.uc.NewGame(ctx)
	f.store.SeedGame(economy.Game{ID: "g-draft", Phase: economy.PhaseDrafting, Rent: 25, SpinsUntilRent: 2, Version: 1})

	if _, err := f.uc.Spin(ctx, Request{GameID: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := f.uc.Draft(ctx, DraftRequest{GameID: created.Game.ID}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank symbol, got %v", err)
	}
	if _, err := f.uc.Spin(ctx, Request{GameID: "nope"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.uc.Draft(ctx, DraftRequest{GameID: "g-draft", SymbolID: "poop"}); !errors.Is(err, symbol.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if g := f.game(t, "g-draft"); g.Phase != economy.PhaseDrafting || g.Version != 1 {
		t.Fatalf("rejected draft must not persist: phase=%s version=%d", g.Phase, g.Version)
	}
}

func TestUseCase_DraftOutsideDraftingIsNoOp(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	created, _ := f.uc.NewGame(ctx)

	out, err := f.uc.Draft(ctx, DraftRequest{GameID: created.Game.ID, SymbolID: "cat"})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if len(out.Events) != 0 || len(out.Game.Deck) != 5 || out.Game.Version != 1 {
		t.Fatalf("draft from idle should change nothing: %+v", out.Game)
	}
}

type failingEvents struct{ ports.EventRepository }

func (failingEvents) Append(context.Context, string, []economy.DomainEvent) error {
	return errors.New("history unavailable")
}

func TestUseCase_HistoryFailureKeepsGameVersion(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	f.store.SeedGame(economy.Game{ID: "g-idle", Phase: economy.PhaseIdle, Deck: slot.Deck{"coin"}, Grid: slot.NewGrid(4, 5), Rent: 25, SpinsUntilRent: 5, Version: 2})
	f.uc.Events = failingEvents{}

	if _, err := f.uc.Spin(ctx, Request{GameID: "g-idle"}); err == nil {
		t.Fatalf("expected history error")
	}
	if g := f.game(t, "g-idle"); g.Phase != economy.PhaseIdle || g.Version != 2 {
		t.Fatalf("failed spin must not persist: phase=%s version=%d", g.Phase, g.Version)
	}
	if f.metrics.failures != 1 {
		t.Fatalf("failure metric mismatch: got=%d want=1", f.metrics.failures)
	}
}

// flakyEvents fails the next fail appends, then delegates.
type flakyEvents struct {
	ports.EventRepository
	fail *int
}

func (e flakyEvents) Append(ctx context.Context, gameID string, events []economy.DomainEvent) error {
	if *e.fail != 0 {
		if *e.fail > 0 {
			*e.fail--
		}
		return errors.New("history unavailable")
	}
	return e.EventRepository.Append(ctx, gameID, events)
}

func TestUseCase_ScheduledStageRetriesAfterHistoryFailure(t *testing.T) {
	sched := scheduler.NewManual()
	f := newFixture(sched)
	ctx := context.Background()
	fail := 0
	f.uc.Events = flakyEvents{EventRepository: memory.NewEventRepo(f.store), fail: &fail}
	created, _ := f.uc.NewGame(ctx)
	req := Request{GameID: created.Game.ID}
	if _, err := f.uc.Spin(ctx, req); err != nil {
		t.Fatalf("spin: %v", err)
	}

	fail = 1
	sched.Advance(1500 * time.Millisecond)
	if got := f.game(t, req.GameID).Phase; got != economy.PhaseSpinning {
		t.Fatalf("phase mismatch: got=%s want=%s", got, economy.PhaseSpinning)
	}
	if got, want := sched.Pending(), 1; got != want {
		t.Fatalf("failed stage should be rescheduled: pending got=%d want=%d", got, want)
	}

	sched.Advance(time.Hour)
	if got, want := f.game(t, req.GameID).Phase, economy.PhaseDrafting; got != want {
		t.Fatalf("phase mismatch: got=%s want=%s", got, want)
	}
	if f.metrics.spins != 1 {
		t.Fatalf("expected one recorded spin, got %d", f.metrics.spins)
	}
}

func TestUseCase_ScheduledStageRetriesAreBounded(t *testing.T) {
	sched := scheduler.NewManual()
	f := newFixture(sched)
	ctx := context.Background()
	fail := 0
	f.uc.Events = flakyEvents{EventRepository: memory.NewEventRepo(f.store), fail: &fail}
	created, _ := f.uc.NewGame(ctx)
	if _, err := f.uc.Spin(ctx, Request{GameID: created.Game.ID}); err != nil {
		t.Fatalf("spin: %v", err)
	}

	fail = -1
	ran := sched.Advance(time.Hour)
	if got, want := ran, maxAdvanceAttempts; got != want {
		t.Fatalf("attempts mismatch: got=%d want=%d", got, want)
	}
	if sched.Pending() != 0 {
		t.Fatalf("expected no pending transition after giving up, got %d", sched.Pending())
	}
	if got, want := f.metrics.failures, maxAdvanceAttempts; got != want {
		t.Fatalf("failure metric mismatch: got=%d want=%d", got, want)
	}
}

func TestRetryBackoffDoublesAndCaps(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{4, 4 * time.Second},
		{20, maxAdvanceBackoff},
	}
	for _, tc := range cases {
		if got := retryBackoff(tc.attempt); got != tc.want {
			t.Fatalf("attempt %d: got=%v want=%v", tc.attempt, got, tc.want)
		}
	}
}
