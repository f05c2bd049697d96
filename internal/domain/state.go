package domain

import "sort"

// UnlockID identifies a threshold-gated companion bonus within a run.
type UnlockID string

// Companion unlocks, in evaluation order.
const (
	UnlockZeze UnlockID = "zeze"
	UnlockBMO  UnlockID = "bmo"
)

// KnownUnlocks returns every unlock id a run can cross.
func KnownUnlocks() []UnlockID {
	return []UnlockID{UnlockZeze, UnlockBMO}
}

// IsKnownUnlock reports whether id names a companion unlock.
func IsKnownUnlock(id UnlockID) bool {
	for _, known := range KnownUnlocks() {
		if id == known {
			return true
		}
	}
	return false
}

// Base rates for a fresh run before any prestige boost.
const (
	BaseClickRate   = 1.0
	BasePassiveRate = 0.0
)

// Rates holds the per-click and per-time-unit gain rates.
type Rates struct {
	Click   float64 `json:"click_rate"`
	Passive float64 `json:"passive_rate"`
}

// ProgressionState is the authoritative snapshot of all mutable game state.
// It is owned by a single engine and only changed through engine transactions.
type ProgressionState struct {
	Currency         float64           `json:"currency"`
	PeakCurrency     float64           `json:"peak_currency"`
	ClickRate        float64           `json:"click_rate"`
	PassiveRate      float64           `json:"passive_rate"`
	PrestigeCurrency int               `json:"prestige_currency"`
	PrestigeCount    int               `json:"prestige_count"`
	UpgradeLevels    map[string]int    `json:"upgrade_levels"`
	UnlockFlags      map[UnlockID]bool `json:"unlock_flags"`
	EndingReached    bool              `json:"ending_reached"`
}

// NewProgressionState returns the default state of a brand new garden.
func NewProgressionState() ProgressionState {
	return ProgressionState{
		ClickRate:     BaseClickRate,
		PassiveRate:   BasePassiveRate,
		UpgradeLevels: make(map[string]int),
		UnlockFlags:   make(map[UnlockID]bool),
	}
}

// Clone returns a deep copy so a transaction can work on it without exposing
// partial changes.
func (s ProgressionState) Clone() ProgressionState {
	out := s
	out.UpgradeLevels = make(map[string]int, len(s.UpgradeLevels))
	for id, level := range s.UpgradeLevels {
		out.UpgradeLevels[id] = level
	}
	out.UnlockFlags = make(map[UnlockID]bool, len(s.UnlockFlags))
	for id, set := range s.UnlockFlags {
		if set {
			out.UnlockFlags[id] = true
		}
	}
	return out
}

// Rates returns the current gain rates.
func (s ProgressionState) Rates() Rates {
	return Rates{Click: s.ClickRate, Passive: s.PassiveRate}
}

// SetRates replaces both gain rates.
func (s *ProgressionState) SetRates(r Rates) {
	s.ClickRate = r.Click
	s.PassiveRate = r.Passive
}

// Level returns how many times the upgrade has been bought this run.
func (s ProgressionState) Level(upgradeID string) int {
	return s.UpgradeLevels[upgradeID]
}

// HasUnlock reports whether the unlock was crossed this run.
func (s ProgressionState) HasUnlock(id UnlockID) bool {
	return s.UnlockFlags[id]
}

// Unlocks returns the crossed unlock ids in sorted order.
func (s ProgressionState) Unlocks() []UnlockID {
	ids := make([]UnlockID, 0, len(s.UnlockFlags))
	for id, set := range s.UnlockFlags {
		if set {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ObserveCurrency raises the run peak to the current balance if needed.
func (s *ProgressionState) ObserveCurrency() {
	if s.Currency > s.PeakCurrency {
		s.PeakCurrency = s.Currency
	}
}

// Settings holds cosmetic preferences the engine stores but never reads.
type Settings struct {
	PixelMode bool `json:"pixel_mode"`
}
