package models

import (
	"maps"
	"slices"
)

// CurrencyCode is the only currency prices are quoted in.
const CurrencyCode = "AUD"

// AxisScores maps an axis name (Sleep, Calm, Focus, Alertness) to an integer score.
// An axis missing from the map scores 0.
type AxisScores map[string]int

// Get returns the score for axis, treating a missing key as 0
func (s AxisScores) Get(axis string) int {
	return s[axis]
}

// ProductSize is a purchasable size of a product or custom blend
type ProductSize struct {
	Label string  `json:"label" yaml:"label" validate:"required"`
	Grams int     `json:"grams" yaml:"grams" validate:"gt=0"`
	Price float64 `json:"price" yaml:"price" validate:"gt=0"`
}

// Product represents a fixed retail tea
type Product struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Name        string        `json:"name" yaml:"name" validate:"required"`
	Description string        `json:"description" yaml:"description"`
	Outcomes    []string      `json:"outcomes" yaml:"outcomes"`
	Sizes       []ProductSize `json:"sizes" yaml:"sizes" validate:"required,min=1,dive"`
}

// Base is a tea base offered within a blend outcome
type Base struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Title       string     `json:"title" yaml:"title" validate:"required"`
	Description string     `json:"description" yaml:"description"`
	Alignment   AxisScores `json:"alignment" yaml:"alignment" validate:"dive,min=0,max=5"`
}

// Botanical is an add-in ingredient that contributes to axis scores
type Botanical struct {
	ID            string     `json:"id" yaml:"id" validate:"required"`
	Title         string     `json:"title" yaml:"title" validate:"required"`
	Attributes    []string   `json:"attributes" yaml:"attributes"`
	Contributions AxisScores `json:"contributions" yaml:"contributions" validate:"dive,min=0"`
	BaseIDs       []string   `json:"base_ids" yaml:"base_ids"`
}

// Flavor is an add-in contributing category weight, subject to pairwise incompatibility
type Flavor struct {
	ID               string         `json:"id" yaml:"id" validate:"required"`
	Title            string         `json:"title" yaml:"title" validate:"required"`
	Category         string         `json:"category" yaml:"category" validate:"required"`
	Notes            []string       `json:"notes" yaml:"notes"`
	Spectrum         map[string]int `json:"spectrum" yaml:"spectrum" validate:"dive,min=0"`
	BaseIDs          []string       `json:"base_ids" yaml:"base_ids"`
	IncompatibleWith []string       `json:"incompatible_with" yaml:"incompatible_with"`
}

// IsIncompatibleWith reports whether f lists flavorID as incompatible
func (f Flavor) IsIncompatibleWith(flavorID string) bool {
	for _, id := range f.IncompatibleWith {
		if id == flavorID {
			return true
		}
	}
	return false
}

// PairsWith reports whether baseID is listed among the flavor's compatible bases
func (f Flavor) PairsWith(baseID string) bool {
	return containsID(f.BaseIDs, baseID)
}

// PairsWith reports whether baseID is listed among the botanical's compatible bases
func (b Botanical) PairsWith(baseID string) bool {
	return containsID(b.BaseIDs, baseID)
}

// BlendOutcome is a configurator goal bundling candidate bases, botanicals and flavors
type BlendOutcome struct {
	ID          string      `json:"id" yaml:"id" validate:"required"`
	Title       string      `json:"title" yaml:"title" validate:"required"`
	Description string      `json:"description" yaml:"description"`
	Bases       []Base      `json:"bases" yaml:"bases" validate:"dive"`
	Botanicals  []Botanical `json:"botanicals" yaml:"botanicals" validate:"dive"`
	Flavors     []Flavor    `json:"flavors" yaml:"flavors" validate:"dive"`
}

// FindBase returns the base with the given id
func (o BlendOutcome) FindBase(id string) (Base, bool) {
	for _, b := range o.Bases {
		if b.ID == id {
			return b, true
		}
	}
	return Base{}, false
}

// FindBotanical returns the botanical with the given id
func (o BlendOutcome) FindBotanical(id string) (Botanical, bool) {
	for _, b := range o.Botanicals {
		if b.ID == id {
			return b, true
		}
	}
	return Botanical{}, false
}

// FindFlavor returns the flavor with the given id
func (o BlendOutcome) FindFlavor(id string) (Flavor, bool) {
	for _, f := range o.Flavors {
		if f.ID == id {
			return f, true
		}
	}
	return Flavor{}, false
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the product
func (p Product) Clone() Product {
	p.Outcomes = slices.Clone(p.Outcomes)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

// Clone returns a deep copy of the base
func (b Base) Clone() Base {
	b.Alignment = maps.Clone(b.Alignment)
	return b
}

// Clone returns a deep copy of the botanical
func (b Botanical) Clone() Botanical {
	b.Attributes = slices.Clone(b.Attributes)
	b.Contributions = maps.Clone(b.Contributions)
	b.BaseIDs = slices.Clone(b.BaseIDs)
	return b
}

// Clone returns a deep copy of the flavor
func (f Flavor) Clone() Flavor {
	f.Notes = slices.Clone(f.Notes)
	f.Spectrum = maps.Clone(f.Spectrum)
	f.BaseIDs = slices.Clone(f.BaseIDs)
	f.IncompatibleWith = slices.Clone(f.IncompatibleWith)
	return f
}

// Clone returns a deep copy of the outcome and every component it owns
func (o BlendOutcome) Clone() BlendOutcome {
	o.Bases = cloneEach(o.Bases, Base.Clone)
	o.Botanicals = cloneEach(o.Botanicals, Botanical.Clone)
	o.Flavors = cloneEach(o.Flavors, Flavor.Clone)
	return o
}

// CloneProducts deep-copies a product list
func CloneProducts(in []Product) []Product {
	return cloneEach(in, Product.Clone)
}

// CloneOutcomes deep-copies an outcome list
func CloneOutcomes(in []BlendOutcome) []BlendOutcome {
	return cloneEach(in, BlendOutcome.Clone)
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}
