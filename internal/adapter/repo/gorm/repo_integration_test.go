package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"rentspin/internal/adapter/repo/memory"
	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"

	"gorm.io/gorm"
)

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("RENTSPIN_DB_DSN")
	if dsn == "" {
		t.Skip("RENTSPIN_DB_DSN is required for integration test")
	}
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if _, err := ApplyMigrations(context.Background(), db, os.DirFS("../../../../migrations")); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestEventRepo_RoundTripNewestFirst(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	gameID := "it-events"
	_ = db.Exec("DELETE FROM domain_events WHERE game_id = ?", gameID).Error

	repo := NewEventRepo(db)
	base := time.Unix(1700000000, 0).UTC()
	err := NewTxManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		return repo.Append(txCtx, gameID, []economy.DomainEvent{
			{Type: economy.EventGameStarted, OccurredAt: base, Payload: map[string]any{"coins": 10}},
			{Type: economy.EventSpinScored, OccurredAt: base.Add(time.Second), Payload: map[string]any{"payout": 7}},
		})
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListByGameID(ctx, gameID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Type != economy.EventSpinScored {
		t.Fatalf("unexpected events: %+v", got)
	}
	if payout, _ := got[0].Payload["payout"].(float64); payout != 7 {
		t.Fatalf("expected payout 7 after round trip, got %v", got[0].Payload["payout"])
	}
	if _, err := repo.ListByGameID(ctx, "it-events-missing", 10); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSpinLedger_RecordOnceAndDecodeGrid(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	gameID := "it-ledger"
	_ = db.Exec("DELETE FROM spin_records WHERE game_id = ?", gameID).Error

	catalog := symbol.DefaultCatalog()
	cat, _ := catalog.Lookup("cat")
	grid := slot.NewGrid(1, 2)
	grid.Cells[0][0] = slot.NewInstance(cat, "i-1")

	ledger := NewSpinLedger(db)
	rec := ports.SpinRecord{
		GameID:     gameID,
		SpinSeq:    1,
		Payout:     22,
		Coins:      32,
		Rent:       25,
		Consumed:   []slot.Consumption{{ConsumerID: "i-1", InstanceID: "i-2", SymbolID: "mouse", Bonus: 20}},
		Grid:       grid,
		RecordedAt: time.Unix(1700000000, 0).UTC(),
	}
	if err := ledger.Record(ctx, rec); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := ledger.Record(ctx, rec); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate spin, got %v", err)
	}

	got, err := ledger.ListByGameID(ctx, gameID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Payout != 22 || len(got[0].Consumed) != 1 {
		t.Fatalf("unexpected ledger: %+v", got)
	}
	if inst := got[0].Grid.At(0, 0); inst == nil || inst.ID != "cat" || inst.InstanceID != "i-1" {
		t.Fatalf("grid did not survive the round trip: %+v", got[0].Grid)
	}
}

func TestChainedTx_RollsBackEventsWhenLedgerFails(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	gameID := "it-atomic"
	_ = db.Exec("DELETE FROM domain_events WHERE game_id = ?", gameID).Error
	_ = db.Exec("DELETE FROM spin_records WHERE game_id = ?", gameID).Error

	events := NewEventRepo(db)
	ledger := NewSpinLedger(db)
	rec := ports.SpinRecord{GameID: gameID, SpinSeq: 1, Grid: slot.NewGrid(1, 1), RecordedAt: time.Unix(1700000000, 0).UTC()}
	if err := ledger.Record(ctx, rec); err != nil {
		t.Fatalf("seed ledger: %v", err)
	}

	tx := memory.NewChainedTxManager(memory.NewStore(), NewTxManager(db))
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := events.Append(txCtx, gameID, []economy.DomainEvent{
			{Type: economy.EventSpinScored, OccurredAt: rec.RecordedAt, Payload: map[string]any{"payout": 5}},
		}); err != nil {
			return err
		}
		return ledger.Record(txCtx, rec)
	})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict from ledger, got %v", err)
	}
	if _, err := events.ListByGameID(ctx, gameID, 10); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("event should have rolled back with the ledger write, got %v", err)
	}
}
