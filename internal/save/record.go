// Package save persists the garden as a single JSON snapshot in a storage slot
// and restores it leniently: anything missing or malformed falls back to the
// fresh-garden default instead of failing.
package save

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// Record is the persisted snapshot layout
type Record struct {
	Currency         float64  `json:"currency"`
	PeakCurrency     float64  `json:"peakCurrency"`
	ClickRate        float64  `json:"clickRate"`
	PassiveRate      float64  `json:"passiveRate"`
	PrestigeCurrency int      `json:"prestigeCurrency"`
	PrestigeCount    int      `json:"prestigeCount"`
	UpgradeLevels    []int    `json:"upgradeLevels"`
	UnlockFlags      []string `json:"unlockFlags"`
	EndingReached    bool     `json:"endingReached"`
	PixelMode        bool     `json:"pixelMode"`

	// Mirrors of UnlockFlags for readers of the older layout
	ZezeUnlocked bool `json:"zezeUnlocked"`
	BMOUnlocked  bool `json:"bmoUnlocked"`
}

// DecodeReport lists what Decode had to repair
type DecodeReport struct {
	Malformed       bool
	LevelsDiscarded bool
	DefaultedFields []string
	DroppedUnlocks  []string
}

// Encode builds the snapshot for state. Upgrade levels are written in catalog order.
func Encode(state domain.ProgressionState, settings domain.Settings, cat *catalog.Catalog) ([]byte, error) {
	defs := cat.All()
	levels := make([]int, len(defs))
	for i, def := range defs {
		levels[i] = state.Level(def.ID)
	}

	unlocks := state.Unlocks()
	flags := make([]string, len(unlocks))
	for i, id := range unlocks {
		flags[i] = string(id)
	}

	return json.Marshal(Record{
		Currency:         state.Currency,
		PeakCurrency:     state.PeakCurrency,
		ClickRate:        state.ClickRate,
		PassiveRate:      state.PassiveRate,
		PrestigeCurrency: state.PrestigeCurrency,
		PrestigeCount:    state.PrestigeCount,
		UpgradeLevels:    levels,
		UnlockFlags:      flags,
		EndingReached:    state.EndingReached,
		PixelMode:        settings.PixelMode,
		ZezeUnlocked:     state.HasUnlock(domain.UnlockZeze),
		BMOUnlocked:      state.HasUnlock(domain.UnlockBMO),
	})
}

// Decode restores a snapshot. It never fails: each field that is missing,
// of the wrong type, negative or non-finite takes its default value.
func Decode(raw []byte, cat *catalog.Catalog) (domain.ProgressionState, domain.Settings, DecodeReport) {
	state := domain.NewProgressionState()
	var settings domain.Settings
	var report DecodeReport

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		report.Malformed = true
		return state, settings, report
	}

	d := decoder{fields: fields, report: &report}

	state.Currency = d.float(state.Currency, fieldCurrency, legacyFieldTotalPets)
	state.PeakCurrency = d.float(state.PeakCurrency, fieldPeakCurrency, legacyFieldBestPetsRun)
	state.ClickRate = d.float(state.ClickRate, fieldClickRate, legacyFieldPetsPerClick)
	state.PassiveRate = d.float(state.PassiveRate, fieldPassiveRate, legacyFieldPetsPerSecond)
	state.PrestigeCurrency = d.count(fieldPrestigeCurrency, legacyFieldHearts)
	state.PrestigeCount = d.count(fieldPrestigeCount, legacyFieldRebirths)
	state.EndingReached = d.bool(fieldEndingReached)
	settings.PixelMode = d.bool(fieldPixelMode)

	// The run peak can never trail the balance.
	if state.PeakCurrency < state.Currency {
		state.PeakCurrency = state.Currency
	}

	defs := cat.All()
	for i, level := range d.levels(len(defs)) {
		if level > 0 {
			state.UpgradeLevels[defs[i].ID] = level
		}
	}

	for _, id := range d.unlocks() {
		state.UnlockFlags[id] = true
	}

	return state, settings, report
}

type decoder struct {
	fields map[string]json.RawMessage
	report *DecodeReport
}

func (d decoder) lookup(names ...string) (json.RawMessage, string, bool) {
	for _, name := range names {
		if v, ok := d.fields[name]; ok && !isNull(v) {
			return v, name, true
		}
	}
	return nil, "", false
}

func (d decoder) float(def float64, names ...string) float64 {
	raw, name, ok := d.lookup(names...)
	if !ok {
		return def
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		d.report.DefaultedFields = append(d.report.DefaultedFields, name)
		return def
	}
	return v
}

func (d decoder) count(names ...string) int {
	v := d.float(0, names...)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

func (d decoder) bool(name string) bool {
	raw, _, ok := d.lookup(name)
	if !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		d.report.DefaultedFields = append(d.report.DefaultedFields, name)
		return false
	}
	return v
}

// levels returns the saved levels, or nil when the array is absent, not an
// array, or its length differs from the catalog.
func (d decoder) levels(catalogLen int) []int {
	raw, _, ok := d.lookup(fieldUpgradeLevels)
	if !ok {
		return nil
	}
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil || len(values) != catalogLen {
		d.report.LevelsDiscarded = true
		return nil
	}

	levels := make([]int, len(values))
	for i, v := range values {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			continue
		}
		if f > math.MaxInt32 {
			f = math.MaxInt32
		}
		levels[i] = int(math.Floor(f))
	}
	return levels
}

func (d decoder) unlocks() []domain.UnlockID {
	var ids []domain.UnlockID
	seen := make(map[domain.UnlockID]bool)
	add := func(id domain.UnlockID) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if raw, _, ok := d.lookup(fieldUnlockFlags); ok {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			d.report.DefaultedFields = append(d.report.DefaultedFields, fieldUnlockFlags)
			names = nil
		}
		for _, name := range names {
			id := domain.UnlockID(name)
			if !domain.IsKnownUnlock(id) {
				d.report.DroppedUnlocks = append(d.report.DroppedUnlocks, name)
				continue
			}
			add(id)
		}
	}
	if d.bool(fieldZezeUnlocked) {
		add(domain.UnlockZeze)
	}
	if d.bool(fieldBMOUnlocked) {
		add(domain.UnlockBMO)
	}
	return ids
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
