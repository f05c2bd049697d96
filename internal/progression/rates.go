package progression

import (
	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// PrestigeBoost returns the multiplier hearts grant to the base rates.
// Formula: 1 + hearts * 0.05
func PrestigeBoost(hearts int) float64 {
	return 1 + float64(hearts)*PrestigeBoostPerHeart
}

// BaseRates returns the rates a fresh run starts with for the given heart total.
func BaseRates(hearts int) domain.Rates {
	boost := PrestigeBoost(hearts)
	return domain.Rates{
		Click:   domain.BaseClickRate * boost,
		Passive: domain.BasePassiveRate * boost,
	}
}

// applyPurchaseEffect folds one purchase into the running rates. Rates are never
// rebuilt from upgrade levels; each purchase is applied once, in order.
func applyPurchaseEffect(s *domain.ProgressionState, def catalog.UpgradeDefinition) {
	s.SetRates(catalog.ApplyEffect(def, s.Rates()))
}
