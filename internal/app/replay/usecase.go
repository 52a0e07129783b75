package replay

import (
	"context"
	"errors"
	"strings"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	TxManager ports.TxManager
	Events    ports.EventRepository
	Ledger    ports.SpinLedger
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	id := strings.TrimSpace(req.GameID)
	if id == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	var (
		events []economy.DomainEvent
		spins  = []ports.SpinRecord{}
	)
	load := func(ctx context.Context) error {
		var err error
		events, err = u.Events.ListByGameID(ctx, id, req.Limit)
		if err != nil {
			return err
		}
		if u.Ledger != nil {
			spins, err = u.Ledger.ListByGameID(ctx, id, req.Limit)
		}
		return err
	}
	var err error
	if u.TxManager != nil {
		err = u.TxManager.RunInTx(ctx, load)
	} else {
		err = load(ctx)
	}
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, Spins: spins, Summary: summarize(events)}, nil
}

func filterByTimeWindow(events []economy.DomainEvent, from, to int64) []economy.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]economy.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// summarize folds events oldest first; the repository lists newest first.
func summarize(events []economy.DomainEvent) Summary {
	var s Summary
	for i := len(events) - 1; i >= 0; i-- {
		p := events[i].Payload
		switch events[i].Type {
		case economy.EventGameStarted:
			s.Coins = int(num(p["coins"]))
			s.Rent = int(num(p["rent"]))
			s.SpinsUntilRent = int(num(p["spins_until_rent"]))
		case economy.EventSpinScored:
			s.Spins++
			s.TotalPayout += int(num(p["payout"]))
			s.Coins = int(num(p["coins"]))
			s.SpinsUntilRent = int(num(p["spins_until_rent"]))
		case economy.EventRentPaid:
			s.RentPaid += int(num(p["paid"]))
			s.Coins = int(num(p["coins"]))
			s.Rent = int(num(p["next_rent"]))
			s.SpinsUntilRent = int(num(p["spins_until_rent"]))
		case economy.EventGameOver:
			s.GameOver = true
		case economy.EventGameRestarted:
			s = Summary{}
		}
	}
	return s
}

// num accepts both in-memory ints and JSON-decoded float64 payload values.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
