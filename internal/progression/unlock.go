package progression

import (
	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// UnlockRule is a one-time bonus granted when the run peak reaches Threshold.
type UnlockRule struct {
	ID        domain.UnlockID
	Threshold float64
	Effect    func(domain.Rates) domain.Rates
}

// DefaultUnlockRules returns the companion unlocks in evaluation order.
func DefaultUnlockRules() []UnlockRule {
	return []UnlockRule{
		{
			ID:        domain.UnlockZeze,
			Threshold: ZezeUnlockThreshold,
			Effect: func(r domain.Rates) domain.Rates {
				r.Passive *= CompanionRateMultiplier
				return r
			},
		},
		{
			ID:        domain.UnlockBMO,
			Threshold: BMOUnlockThreshold,
			Effect: func(r domain.Rates) domain.Rates {
				r.Click *= CompanionRateMultiplier
				return r
			},
		},
	}
}

// EvaluateUnlocks crosses every rule whose threshold the peak has reached and
// checks the ending condition. Flags only ever get added, so a second call on
// the same state returns nothing and changes nothing.
func EvaluateUnlocks(s *domain.ProgressionState, rules []UnlockRule) []domain.Notification {
	var notes []domain.Notification

	for _, rule := range rules {
		if s.PeakCurrency < rule.Threshold || s.HasUnlock(rule.ID) {
			continue
		}
		if s.UnlockFlags == nil {
			s.UnlockFlags = make(map[domain.UnlockID]bool)
		}
		s.UnlockFlags[rule.ID] = true
		if rule.Effect != nil {
			s.SetRates(rule.Effect(s.Rates()))
		}
		notes = append(notes, domain.UnlockCrossed(rule.ID))
	}

	if !s.EndingReached && endingConditionMet(s) {
		s.EndingReached = true
		notes = append(notes, domain.EndingReached())
	}

	return notes
}

func endingConditionMet(s *domain.ProgressionState) bool {
	return s.PrestigeCurrency >= EndingPrestigeThreshold || s.PeakCurrency >= EndingPeakThreshold
}
