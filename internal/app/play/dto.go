package play

import "rentspin/internal/domain/economy"

type Request struct {
	GameID string
}

type DraftRequest struct {
	GameID   string
	SymbolID string
}

type Response struct {
	Game   economy.Game          `json:"game"`
	Events []economy.DomainEvent `json:"events"`
}
