package progression

import (
	"fmt"
	"math"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// maxPow10Exponent bounds the correction loop to finite powers of ten.
const maxPow10Exponent = 308

// PotentialPrestige returns the total hearts a run with this peak is worth.
// Formula: floor(log10(peak / 1000)), 0 below 1000.
func PotentialPrestige(peak float64) int {
	if peak < PrestigeBaseThreshold || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return 0
	}

	ratio := peak / PrestigeBaseThreshold
	k := int(math.Floor(math.Log10(ratio)))

	// math.Log10 can land a hair below an exact power of ten (1e3 -> 2.9999...);
	// snap k so that 10^k <= ratio < 10^(k+1).
	for k < maxPow10Exponent && math.Pow10(k+1) <= ratio {
		k++
	}
	for k > 0 && math.Pow10(k) > ratio {
		k--
	}

	if k < 0 {
		return 0
	}
	return k
}

// AvailablePrestigeGain returns how many new hearts a rebirth would grant.
func AvailablePrestigeGain(peak float64, currentPrestige int) int {
	gain := PotentialPrestige(peak) - currentPrestige
	if gain < 0 {
		return 0
	}
	return gain
}

// PerformRebirth converts the run peak into hearts and resets the run.
// endingReached and prestigeCount history survive. On error s is not modified.
func PerformRebirth(s *domain.ProgressionState) (int, error) {
	gain := AvailablePrestigeGain(s.PeakCurrency, s.PrestigeCurrency)
	if gain <= 0 {
		return 0, fmt.Errorf(ErrMsgNoGainFmt, domain.ErrNoGainAvailable, s.PeakCurrency, PotentialPrestige(s.PeakCurrency), s.PrestigeCurrency)
	}

	s.PrestigeCurrency += gain
	s.PrestigeCount++
	s.Currency = 0
	s.PeakCurrency = 0
	s.UpgradeLevels = make(map[string]int)
	s.UnlockFlags = make(map[domain.UnlockID]bool)
	s.SetRates(BaseRates(s.PrestigeCurrency))

	return gain, nil
}

// RebirthPreview summarises what a rebirth would do right now.
type RebirthPreview struct {
	Hearts    int     `json:"hearts"`
	Rebirths  int     `json:"rebirths"`
	BestRun   float64 `json:"best_run"`
	Potential int     `json:"potential"`
	Gain      int     `json:"gain"`
	BoostNow  float64 `json:"boost_now"`
	BoostNext float64 `json:"boost_next"`
}

// PreviewRebirth builds a RebirthPreview for s.
func PreviewRebirth(s domain.ProgressionState) RebirthPreview {
	gain := AvailablePrestigeGain(s.PeakCurrency, s.PrestigeCurrency)
	return RebirthPreview{
		Hearts:    s.PrestigeCurrency,
		Rebirths:  s.PrestigeCount,
		BestRun:   s.PeakCurrency,
		Potential: PotentialPrestige(s.PeakCurrency),
		Gain:      gain,
		BoostNow:  PrestigeBoost(s.PrestigeCurrency),
		BoostNext: PrestigeBoost(s.PrestigeCurrency + gain),
	}
}
