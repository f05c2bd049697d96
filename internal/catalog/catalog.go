package catalog

import (
	"fmt"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// EffectKind defines how an upgrade changes the rate model
type EffectKind string

const (
	// EffectAddClickRate: click + magnitude
	EffectAddClickRate EffectKind = "AddClickRate"

	// EffectMultClickRate: click * (1 + magnitude)
	EffectMultClickRate EffectKind = "MultClickRate"

	// EffectAddPassiveRate: passive + magnitude
	EffectAddPassiveRate EffectKind = "AddPassiveRate"

	// EffectMultPassiveRate: passive * (1 + magnitude)
	EffectMultPassiveRate EffectKind = "MultPassiveRate"

	// EffectMultGlobalRate: click and passive both * (1 + magnitude)
	EffectMultGlobalRate EffectKind = "MultGlobalRate"
)

// Valid reports whether k is one of the known effect kinds.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectAddClickRate, EffectMultClickRate, EffectAddPassiveRate, EffectMultPassiveRate, EffectMultGlobalRate:
		return true
	default:
		return false
	}
}

// UpgradeDefinition is an immutable purchasable upgrade
type UpgradeDefinition struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Effect       EffectKind `json:"effect" yaml:"effect"`
	Magnitude    float64    `json:"magnitude" yaml:"magnitude"`
	BaseCost     float64    `json:"base_cost" yaml:"base_cost"`
	GrowthFactor float64    `json:"growth_factor" yaml:"growth_factor"`
}

// Catalog is the fixed, ordered set of upgrades. The order is part of the save
// format: persisted upgrade levels are aligned 1:1 with it.
type Catalog struct {
	defs  []UpgradeDefinition
	index map[string]int
}

// New validates the definitions and builds a catalog preserving their order.
func New(defs []UpgradeDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf(ErrMsgEmptyCatalog, domain.ErrInvalidInput)
	}

	c := &Catalog{
		defs:  make([]UpgradeDefinition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if err := validateDefinition(i, def); err != nil {
			return nil, err
		}
		if _, dup := c.index[def.ID]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateIDFmt, domain.ErrInvalidInput, def.ID)
		}
		c.defs[i] = def
		c.index[def.ID] = i
	}
	return c, nil
}

func validateDefinition(i int, def UpgradeDefinition) error {
	switch {
	case def.ID == "":
		return fmt.Errorf(ErrMsgEmptyIDFmt, domain.ErrInvalidInput, i)
	case !def.Effect.Valid():
		return fmt.Errorf(ErrMsgUnknownEffectFmt, domain.ErrInvalidInput, def.ID, def.Effect)
	case def.Magnitude <= 0:
		return fmt.Errorf(ErrMsgNonPositiveMagnitude, domain.ErrInvalidInput, def.ID)
	case def.BaseCost <= 0:
		return fmt.Errorf(ErrMsgNonPositiveBaseCost, domain.ErrInvalidInput, def.ID)
	case def.GrowthFactor <= 1:
		return fmt.Errorf(ErrMsgGrowthNotAboveOneFmt, domain.ErrInvalidInput, def.ID)
	}
	return nil
}

// Len returns the number of upgrades.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns the definitions in catalog order.
func (c *Catalog) All() []UpgradeDefinition {
	out := make([]UpgradeDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Get looks up a definition by id.
func (c *Catalog) Get(id string) (UpgradeDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return UpgradeDefinition{}, false
	}
	return c.defs[i], true
}

// IndexOf returns the position of id in catalog order.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Default returns the garden's built-in upgrade table.
func Default() *Catalog {
	c, err := New(DefaultDefinitions())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultDefinitions lists the built-in upgrades in their persisted order.
func DefaultDefinitions() []UpgradeDefinition {
	return []UpgradeDefinition{
		{ID: "softPaws", Name: "Soft Paws", Description: "+0.50 pets per click", Effect: EffectAddClickRate, Magnitude: 0.5, BaseCost: 15, GrowthFactor: 1.35},
		{ID: "sleepushi", Name: "Sleepushi", Description: "+2.0 pets per click", Effect: EffectAddClickRate, Magnitude: 2, BaseCost: 80, GrowthFactor: 1.45},
		{ID: "blanket", Name: "Supa Cozy Blanket", Description: "+25% per-click pets", Effect: EffectMultClickRate, Magnitude: 0.25, BaseCost: 150, GrowthFactor: 1.55},
		{ID: "sunbeam", Name: "Sunny Window", Description: "+0.5 pets per second", Effect: EffectAddPassiveRate, Magnitude: 0.5, BaseCost: 20, GrowthFactor: 1.3},
		{ID: "autoPetter", Name: "Auto Petter", Description: "+2.0 pets per second", Effect: EffectAddPassiveRate, Magnitude: 2, BaseCost: 120, GrowthFactor: 1.5},
		{ID: "catCafe", Name: "Cat Café", Description: "+6.0 pets per second", Effect: EffectAddPassiveRate, Magnitude: 6, BaseCost: 400, GrowthFactor: 1.6},
		{ID: "influencer", Name: "Little Princessushi", Description: "+25% passive pets", Effect: EffectMultPassiveRate, Magnitude: 0.25, BaseCost: 600, GrowthFactor: 1.7},
		{ID: "treatBag", Name: "Food Stealer", Description: "+20% to ALL pets", Effect: EffectMultGlobalRate, Magnitude: 0.2, BaseCost: 900, GrowthFactor: 1.75},
		{ID: "throne", Name: "Thronushi", Description: "+35% to ALL pets", Effect: EffectMultGlobalRate, Magnitude: 0.35, BaseCost: 2000, GrowthFactor: 1.9},
	}
}
