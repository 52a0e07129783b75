package play

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid play request")

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Events    ports.EventRepository
	Ledger    ports.SpinLedger
	Metrics   ports.GameMetrics
	// Scheduler delays the spin pipeline. When nil every stage runs
	// immediately after the previous one commits.
	Scheduler ports.Scheduler
	Machine   economy.Machine
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}

func (u UseCase) NewGame(ctx context.Context) (Response, error) {
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	game, events, err := u.Machine.NewGame(newID(), u.now())
	if err != nil {
		return Response{}, err
	}
	game.Version = 1
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Games.SaveWithVersion(txCtx, game, 0); err != nil {
			return err
		}
		return u.Events.Append(txCtx, game.ID, events)
	})
	if err != nil {
		u.recordFailure()
		return Response{}, err
	}
	u.logger().Info("game started", zap.String("game_id", game.ID), zap.Int("coins", game.Coins), zap.Int("rent", game.Rent))
	return Response{Game: game.Clone(), Events: events}, nil
}

func (u UseCase) Restart(ctx context.Context, req Request) (Response, error) {
	id, err := gameID(req.GameID)
	if err != nil {
		return Response{}, err
	}
	return u.mutate(ctx, id, func(g *economy.Game, now time.Time) ([]economy.DomainEvent, error) {
		return g.Restart(u.Machine, now), nil
	})
}

// Spin starts the spin pipeline. It is a no-op unless the game is idle.
func (u UseCase) Spin(ctx context.Context, req Request) (Response, error) {
	id, err := gameID(req.GameID)
	if err != nil {
		return Response{}, err
	}
	out, err := u.mutate(ctx, id, func(g *economy.Game, now time.Time) ([]economy.DomainEvent, error) {
		return g.Spin(u.Machine, now)
	})
	if err != nil || len(out.Events) == 0 {
		return out, err
	}
	return u.pipeline(ctx, out)
}

// Draft picks a symbol (or symbol.SkipID) and settles rent when due.
func (u UseCase) Draft(ctx context.Context, req DraftRequest) (Response, error) {
	id, err := gameID(req.GameID)
	if err != nil {
		return Response{}, err
	}
	symbolID := strings.TrimSpace(req.SymbolID)
	if symbolID == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.mutate(ctx, id, func(g *economy.Game, now time.Time) ([]economy.DomainEvent, error) {
		return g.Draft(u.Machine, symbolID, now)
	})
}

// Advance applies the delayed transition out of phase from. It does nothing
// when the game has moved on or was restarted since seq was issued.
func (u UseCase) Advance(ctx context.Context, gameID string, seq int64, from economy.Phase) (Response, error) {
	out, err := u.step(ctx, gameID, seq, from)
	if err != nil || len(out.Events) == 0 {
		return out, err
	}
	return u.pipeline(ctx, out)
}

func (u UseCase) step(ctx context.Context, gameID string, seq int64, from economy.Phase) (Response, error) {
	return u.mutate(ctx, gameID, func(g *economy.Game, now time.Time) ([]economy.DomainEvent, error) {
		if g.SpinSeq != seq || g.Phase != from {
			return nil, nil
		}
		switch from {
		case economy.PhaseSpinning:
			return g.Resolve(u.Machine, now), nil
		case economy.PhaseInteraction:
			return g.Reveal(now), nil
		case economy.PhaseScoring:
			return g.Score(u.Machine, now), nil
		}
		return nil, nil
	})
}

// pipeline hands the next stage to the scheduler, or runs the remaining
// stages inline when there is no scheduler.
func (u UseCase) pipeline(ctx context.Context, out Response) (Response, error) {
	if u.Scheduler != nil {
		u.schedule(out.Game)
		return out, nil
	}
	events := out.Events
	for u.delay(out.Game.Phase) >= 0 {
		next, err := u.step(ctx, out.Game.ID, out.Game.SpinSeq, out.Game.Phase)
		if err != nil {
			return Response{}, err
		}
		if len(next.Events) == 0 {
			break
		}
		events = append(events, next.Events...)
		out = next
	}
	out.Events = events
	return out, nil
}

// delay is the pause before leaving phase p, or -1 when p does not advance
// on its own.
func (u UseCase) delay(p economy.Phase) time.Duration {
	switch p {
	case economy.PhaseSpinning:
		return u.Machine.Tuning.SettleDelay
	case economy.PhaseInteraction:
		return u.Machine.Tuning.RevealDelay
	case economy.PhaseScoring:
		return u.Machine.Tuning.FlightDelay
	default:
		return -1
	}
}

const (
	maxAdvanceAttempts = 6
	advanceRetryDelay  = 500 * time.Millisecond
	maxAdvanceBackoff  = 30 * time.Second
)

func (u UseCase) schedule(g economy.Game) {
	d := u.delay(g.Phase)
	if d < 0 {
		return
	}
	u.scheduleAdvance(g.ID, g.SpinSeq, g.Phase, d, 1)
}

// scheduleAdvance runs the stage out of phase from after d. A failed stage is
// retried with doubling backoff so a transient history error does not leave
// the game parked mid-spin.
func (u UseCase) scheduleAdvance(id string, seq int64, from economy.Phase, d time.Duration, attempt int) {
	u.Scheduler.After(d, func() {
		_, err := u.Advance(context.Background(), id, seq, from)
		if err == nil {
			return
		}
		log := u.logger().With(
			zap.String("game_id", id),
			zap.Int64("spin_seq", seq),
			zap.String("phase", string(from)),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if errors.Is(err, ports.ErrNotFound) || attempt >= maxAdvanceAttempts {
			log.Error("advance spin failed")
			return
		}
		log.Warn("advance spin failed, retrying")
		u.scheduleAdvance(id, seq, from, retryBackoff(attempt), attempt+1)
	})
}

func retryBackoff(attempt int) time.Duration {
	d := advanceRetryDelay << (attempt - 1)
	if d > maxAdvanceBackoff || d <= 0 {
		return maxAdvanceBackoff
	}
	return d
}

type transition func(g *economy.Game, now time.Time) ([]economy.DomainEvent, error)

// mutate loads the game, applies fn and persists the result together with
// its events. A transition that emits no events is not persisted.
func (u UseCase) mutate(ctx context.Context, id string, fn transition) (Response, error) {
	now := u.now()
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		game, err := u.Games.Get(txCtx, id)
		if err != nil {
			return err
		}
		events, err := fn(&game, now)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			out = Response{Game: game, Events: []economy.DomainEvent{}}
			return nil
		}
		// History is written before the game so that a failing history
		// store leaves the game at its previous version.
		if err := u.Events.Append(txCtx, game.ID, events); err != nil {
			return err
		}
		if err := u.recordLedger(txCtx, game, events, now); err != nil {
			return err
		}
		expected := game.Version
		game.Version++
		if err := u.Games.SaveWithVersion(txCtx, game, expected); err != nil {
			return err
		}
		out = Response{Game: game.Clone(), Events: events}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			u.recordFailure()
		}
		return Response{}, err
	}
	u.observe(out.Game, out.Events)
	return out, nil
}

func (u UseCase) recordLedger(ctx context.Context, g economy.Game, events []economy.DomainEvent, now time.Time) error {
	if u.Ledger == nil {
		return nil
	}
	for _, e := range events {
		if e.Type != economy.EventSpinScored {
			continue
		}
		rec := ports.SpinRecord{
			GameID:         g.ID,
			SpinSeq:        g.SpinSeq,
			Payout:         g.LastOutcome.Payout,
			Coins:          g.Coins,
			Rent:           g.Rent,
			SpinsUntilRent: g.SpinsUntilRent,
			Consumed:       g.LastOutcome.Consumed,
			Grid:           g.Grid.Clone(),
			RecordedAt:     now,
		}
		if err := u.Ledger.Record(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (u UseCase) observe(g economy.Game, events []economy.DomainEvent) {
	log := u.logger().With(zap.String("game_id", g.ID), zap.Int64("spin_seq", g.SpinSeq))
	for _, e := range events {
		switch e.Type {
		case economy.EventSpinScored:
			if u.Metrics != nil {
				u.Metrics.RecordSpin(g.LastOutcome.Payout, len(g.LastOutcome.Consumed))
			}
			log.Info("spin scored",
				zap.Int("payout", g.LastOutcome.Payout),
				zap.Int("coins", g.Coins),
				zap.Int("spins_until_rent", g.SpinsUntilRent),
			)
		case economy.EventRentPaid:
			paid, _ := e.Payload["paid"].(int)
			if u.Metrics != nil {
				u.Metrics.RecordRentPaid(paid)
			}
			log.Info("rent paid", zap.Int("paid", paid), zap.Int("next_rent", g.Rent))
		case economy.EventGameOver:
			if u.Metrics != nil {
				u.Metrics.RecordGameOver()
			}
			log.Info("game over", zap.Int("coins", g.Coins), zap.Int("rent", g.Rent))
		default:
			log.Debug("game transition", zap.String("event", e.Type), zap.String("phase", string(g.Phase)))
		}
	}
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}

func gameID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidRequest
	}
	return id, nil
}
