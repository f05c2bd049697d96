package catalog

import (
	"fmt"
	"math"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// CostAt returns the price of buying def when it has already been bought level times.
// Formula: floor(baseCost * growthFactor^level)
func CostAt(def UpgradeDefinition, level int) (float64, error) {
	if level < 0 {
		return 0, fmt.Errorf(ErrMsgNegativeLevelFmt, domain.ErrInvalidArgument, level)
	}
	return math.Floor(def.BaseCost * math.Pow(def.GrowthFactor, float64(level))), nil
}

// ApplyEffect returns the rates after one purchase of def.
// Effects stack in purchase order; callers apply each purchase exactly once.
func ApplyEffect(def UpgradeDefinition, rates domain.Rates) domain.Rates {
	factor := 1 + def.Magnitude

	switch def.Effect {
	case EffectAddClickRate:
		rates.Click += def.Magnitude
	case EffectMultClickRate:
		rates.Click *= factor
	case EffectAddPassiveRate:
		rates.Passive += def.Magnitude
	case EffectMultPassiveRate:
		rates.Passive *= factor
	case EffectMultGlobalRate:
		rates.Click *= factor
		rates.Passive *= factor
	}
	return rates
}
