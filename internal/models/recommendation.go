package models

// CompatibilityStatus is the outcome of a flavor compatibility check
type CompatibilityStatus string

const (
	CompatibilityOK       CompatibilityStatus = "ok"
	CompatibilityConflict CompatibilityStatus = "conflict"
)

// ConflictPair is an unordered pair of flavors that must not share a blend.
// First is the flavor that appeared earlier in the checked selection.
type ConflictPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// CompatibilityResult carries the conflicting pairs found in a flavor selection
type CompatibilityResult struct {
	Status    CompatibilityStatus `json:"status"`
	Conflicts []ConflictPair      `json:"conflicts"`
}

// OK reports whether the selection has no conflicts
func (r CompatibilityResult) OK() bool {
	return len(r.Conflicts) == 0
}

// BlendSelection is an in-progress custom blend within one outcome
type BlendSelection struct {
	BaseID       string   `json:"base_id" binding:"required"`
	BotanicalIDs []string `json:"botanical_ids"`
	FlavorIDs    []string `json:"flavor_ids"`
}

// FlavorSelection is the body of a compatibility check request
type FlavorSelection struct {
	FlavorIDs []string `json:"flavor_ids"`
}

// SelectionScore is the read-out for a blend selection
type SelectionScore struct {
	OutcomeID     string              `json:"outcome_id"`
	Axes          AxisScores          `json:"axes"`
	Spectrum      map[string]int      `json:"spectrum"`
	DominantAxis  string              `json:"dominant_axis"`
	Unpaired      []string            `json:"unpaired"`
	Compatibility CompatibilityResult `json:"compatibility"`
}

// Configurator is everything the custom blend pages need in one payload
type Configurator struct {
	Outcomes         []BlendOutcome `json:"outcomes"`
	Axes             []string       `json:"axes"`
	FlavorCategories []string       `json:"flavor_categories"`
	BlendSizes       []ProductSize  `json:"blend_sizes"`
	Currency         string         `json:"currency"`
}
