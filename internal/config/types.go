package config

import "rentspin/internal/domain/symbol"

// RawTuning mirrors the YAML tuning file. Nil fields keep their defaults.
type RawTuning struct {
	Grid         GridConfig    `yaml:"grid"`
	Economy      EconomyConfig `yaml:"economy"`
	StartingDeck []string      `yaml:"starting_deck,omitempty"`
	Delays       DelayConfig   `yaml:"delays"`
	Draft        DraftConfig   `yaml:"draft"`
}

type GridConfig struct {
	Rows *int `yaml:"rows"`
	Cols *int `yaml:"cols"`
}

type EconomyConfig struct {
	StartingCoins *int `yaml:"starting_coins"`
	StartingRent  *int `yaml:"starting_rent"`
	RentIncrement *int `yaml:"rent_increment"`
	SpinsPerCycle *int `yaml:"spins_per_cycle"`
}

// DelayConfig is in milliseconds.
type DelayConfig struct {
	SettleMS *int `yaml:"settle_ms"`
	RevealMS *int `yaml:"reveal_ms"`
	FlightMS *int `yaml:"flight_ms"`
}

type DraftConfig struct {
	OfferCount *int                  `yaml:"offer_count"`
	Weights    map[symbol.Rarity]int `yaml:"weights,omitempty"`
}

// RawCatalog mirrors the YAML catalog file.
type RawCatalog struct {
	Symbols []symbol.Definition `yaml:"symbols"`
}
