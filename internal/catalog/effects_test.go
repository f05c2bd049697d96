package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

func TestCostAt(t *testing.T) {
	softPaws := UpgradeDefinition{ID: "softPaws", Effect: EffectAddClickRate, Magnitude: 0.5, BaseCost: 15, GrowthFactor: 1.35}

	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"level 0 is base cost", 0, 15},
		{"level 1 floors 20.25", 1, 20},
		{"level 2 floors 27.3375", 2, 27},
		{"level 3 floors 36.905", 3, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CostAt(softPaws, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCostAt_NegativeLevel(t *testing.T) {
	def := DefaultDefinitions()[0]

	_, err := CostAt(def, -1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.Contains(t, err.Error(), domain.ErrMsgInvalidArgument)
}

func TestCostAt_StrictlyIncreasing(t *testing.T) {
	for _, def := range DefaultDefinitions() {
		prev, err := CostAt(def, 0)
		require.NoError(t, err)
		for level := 1; level <= 40; level++ {
			cost, err := CostAt(def, level)
			require.NoError(t, err)
			assert.Greater(t, cost, prev, "%s level %d", def.ID, level)
			prev = cost
		}
	}
}

func TestApplyEffect(t *testing.T) {
	start := domain.Rates{Click: 2, Passive: 4}

	tests := []struct {
		name   string
		effect EffectKind
		want   domain.Rates
	}{
		{"add click", EffectAddClickRate, domain.Rates{Click: 2.5, Passive: 4}},
		{"mult click", EffectMultClickRate, domain.Rates{Click: 3, Passive: 4}},
		{"add passive", EffectAddPassiveRate, domain.Rates{Click: 2, Passive: 4.5}},
		{"mult passive", EffectMultPassiveRate, domain.Rates{Click: 2, Passive: 6}},
		{"mult global", EffectMultGlobalRate, domain.Rates{Click: 3, Passive: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := UpgradeDefinition{ID: "x", Effect: tt.effect, Magnitude: 0.5, BaseCost: 1, GrowthFactor: 2}
			got := ApplyEffect(def, start)
			assert.InDelta(t, tt.want.Click, got.Click, 1e-9)
			assert.InDelta(t, tt.want.Passive, got.Passive, 1e-9)
		})
	}
}

func TestApplyEffect_PurchaseOrderMatters(t *testing.T) {
	add := UpgradeDefinition{ID: "add", Effect: EffectAddClickRate, Magnitude: 1, BaseCost: 1, GrowthFactor: 2}
	mult := UpgradeDefinition{ID: "mult", Effect: EffectMultClickRate, Magnitude: 1, BaseCost: 1, GrowthFactor: 2}
	base := domain.Rates{Click: 1}

	addThenMult := ApplyEffect(mult, ApplyEffect(add, base))
	multThenAdd := ApplyEffect(add, ApplyEffect(mult, base))

	assert.Equal(t, 4.0, addThenMult.Click)
	assert.Equal(t, 3.0, multThenAdd.Click)
}

func TestApplyEffect_ZeroPassiveStaysZeroUnderMultipliers(t *testing.T) {
	def := UpgradeDefinition{ID: "g", Effect: EffectMultGlobalRate, Magnitude: 0.35, BaseCost: 1, GrowthFactor: 2}

	got := ApplyEffect(def, domain.Rates{Click: 1, Passive: 0})

	assert.Equal(t, 0.0, got.Passive)
	assert.InDelta(t, 1.35, got.Click, 1e-12)
}
