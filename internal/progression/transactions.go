package progression

import (
	"fmt"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// ApplyPetAction grants one click worth of currency.
func ApplyPetAction(s *domain.ProgressionState) {
	s.Currency += s.ClickRate
	s.ObserveCurrency()
}

// ApplyPassiveTick grants passiveRate * elapsedFraction. It reports false and
// leaves the state untouched when there is no passive income.
func ApplyPassiveTick(s *domain.ProgressionState, elapsedFraction float64) bool {
	if s.PassiveRate <= 0 {
		return false
	}
	s.Currency += s.PassiveRate * elapsedFraction
	s.ObserveCurrency()
	return true
}

// PurchaseUpgrade buys one level of upgradeID. The cost uses the pre-purchase
// level and is charged before the rates change. On error s is not modified.
func PurchaseUpgrade(s *domain.ProgressionState, cat *catalog.Catalog, upgradeID string) (float64, error) {
	def, ok := cat.Get(upgradeID)
	if !ok {
		return 0, fmt.Errorf(ErrMsgUnknownUpgradeFmt, domain.ErrUpgradeNotFound, upgradeID)
	}

	cost, err := catalog.CostAt(def, s.Level(upgradeID))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgUpgradeCostFailedFmt, upgradeID, err)
	}
	if s.Currency < cost {
		return cost, fmt.Errorf(ErrMsgCannotAffordFmt, domain.ErrInsufficientFunds, upgradeID, cost, s.Currency)
	}

	s.Currency -= cost
	if s.UpgradeLevels == nil {
		s.UpgradeLevels = make(map[string]int)
	}
	s.UpgradeLevels[upgradeID]++
	applyPurchaseEffect(s, def)
	return cost, nil
}
