package status

import (
	"context"
	"errors"
	"strings"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	id := strings.TrimSpace(req.GameID)
	if id == "" {
		return Response{}, ErrInvalidRequest
	}
	var game economy.Game
	load := func(ctx context.Context) error {
		g, err := u.Games.Get(ctx, id)
		if err != nil {
			return err
		}
		game = g
		return nil
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

	shortfall := game.Rent - game.Coins
	if shortfall < 0 {
		shortfall = 0
	}
	return Response{
		Game:          game,
		RentShortfall: shortfall,
		CanSpin:       game.Phase == economy.PhaseIdle,
		CanDraft:      game.Phase == economy.PhaseDrafting,
	}, nil
}
