package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/symbol"

	"gopkg.in/yaml.v3"
)

// Config is the validated runtime configuration of the engine.
type Config struct {
	Tuning  economy.Tuning
	Catalog symbol.Catalog
}

// Load reads the optional catalog and tuning files, merges them over the
// built-in defaults and validates the result. Empty paths use the defaults.
func Load(tuningPath, catalogPath string) (Config, error) {
	catalog := symbol.DefaultCatalog()
	if catalogPath != "" {
		c, err := LoadCatalog(catalogPath)
		if err != nil {
			return Config{}, err
		}
		catalog = c
	}

	tuning := economy.DefaultTuning()
	if tuningPath != "" {
		raw, err := readTuning(tuningPath)
		if err != nil {
			return Config{}, fmt.Errorf("read tuning: %w", err)
		}
		if err := ValidateRaw(raw); err != nil {
			return Config{}, err
		}
		tuning = Merge(tuning, raw)
	}
	if err := ValidateTuning(tuning, catalog); err != nil {
		return Config{}, err
	}
	return Config{Tuning: tuning, Catalog: catalog}, nil
}

func LoadCatalog(path string) (symbol.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return symbol.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var raw RawCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return symbol.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := ValidateCatalog(raw); err != nil {
		return symbol.Catalog{}, err
	}
	return symbol.NewCatalog(raw.Symbols), nil
}

// readTuning loads a tuning file. A missing file yields a zero RawTuning.
func readTuning(path string) (RawTuning, error) {
	var raw RawTuning
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawTuning{}, nil
		}
		return RawTuning{}, err
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawTuning{}, err
	}
	return raw, nil
}

// Merge overrides base with every field set in raw. Slices and maps replace
// rather than merge.
func Merge(base economy.Tuning, raw RawTuning) economy.Tuning {
	out := base
	setInt(&out.Rows, raw.Grid.Rows)
	setInt(&out.Cols, raw.Grid.Cols)
	setInt(&out.StartingCoins, raw.Economy.StartingCoins)
	setInt(&out.StartingRent, raw.Economy.StartingRent)
	setInt(&out.RentIncrement, raw.Economy.RentIncrement)
	setInt(&out.SpinsPerCycle, raw.Economy.SpinsPerCycle)
	setInt(&out.OfferCount, raw.Draft.OfferCount)
	setMillis(&out.SettleDelay, raw.Delays.SettleMS)
	setMillis(&out.RevealDelay, raw.Delays.RevealMS)
	setMillis(&out.FlightDelay, raw.Delays.FlightMS)

	if len(raw.StartingDeck) > 0 {
		out.StartingDeck = append([]string(nil), raw.StartingDeck...)
	}
	if len(raw.Draft.Weights) > 0 {
		out.OfferWeights = make(map[symbol.Rarity]int, len(raw.Draft.Weights))
		for r, w := range raw.Draft.Weights {
			out.OfferWeights[r] = w
		}
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil {
		*dst = time.Duration(*v) * time.Millisecond
	}
}
