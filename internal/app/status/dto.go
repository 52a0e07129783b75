package status

import "rentspin/internal/domain/economy"

type Request struct {
	GameID string
}

type Response struct {
	Game economy.Game `json:"game"`
	// RentShortfall is how many more coins the next rent payment needs.
	RentShortfall int  `json:"rent_shortfall"`
	CanSpin       bool `json:"can_spin"`
	CanDraft      bool `json:"can_draft"`
}
