package status

import (
	"context"
	"errors"
	"testing"

	"rentspin/internal/domain/economy"
)

func TestUseCase_DerivesShortfallAndAffordances(t *testing.T) {
	uc := UseCase{Games: statusGameRepo{game: economy.Game{
		ID:    "g-1",
		Phase: economy.PhaseDrafting,
		Coins: 12,
		Rent:  25,
	}}}
	resp, err := uc.Execute(context.Background(), Request{GameID: "g-1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.RentShortfall != 13 {
		t.Fatalf("expected shortfall 13, got %d", resp.RentShortfall)
	}
	if resp.CanSpin || !resp.CanDraft {
		t.Fatalf("drafting game should only allow drafting: spin=%v draft=%v", resp.CanSpin, resp.CanDraft)
	}
}

func TestUseCase_NoShortfallWhenRentCovered(t *testing.T) {
	uc := UseCase{Games: statusGameRepo{game: economy.Game{ID: "g-1", Phase: economy.PhaseIdle, Coins: 40, Rent: 25}}}
	resp, err := uc.Execute(context.Background(), Request{GameID: "g-1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.RentShortfall != 0 || !resp.CanSpin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUseCase_RejectsEmptyGameID(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("repo down")
	uc := UseCase{Games: statusGameRepo{err: wantErr}}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g-1"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error %v, got %v", wantErr, err)
	}
}

type statusGameRepo struct {
	game economy.Game
	err  error
}

func (r statusGameRepo) Get(_ context.Context, _ string) (economy.Game, error) {
	if r.err != nil {
		return economy.Game{}, r.err
	}
	return r.game, nil
}

func (r statusGameRepo) SaveWithVersion(_ context.Context, _ economy.Game, _ int64) error {
	return nil
}
