package replay

import (
	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

type Request struct {
	GameID       string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	Spins          int  `json:"spins"`
	TotalPayout    int  `json:"total_payout"`
	RentPaid       int  `json:"rent_paid"`
	Coins          int  `json:"coins"`
	Rent           int  `json:"rent"`
	SpinsUntilRent int  `json:"spins_until_rent"`
	GameOver       bool `json:"game_over"`
}

type Response struct {
	Events  []economy.DomainEvent `json:"events"`
	Spins   []ports.SpinRecord    `json:"spins"`
	Summary Summary               `json:"summary"`
}
