package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yishak-cs/tea_alchemy/internal/models"
)

// Definition is the raw catalog content a Store is built from
type Definition struct {
	Axes                 []string              `yaml:"axes" validate:"required,min=1,dive,required"`
	FlavorCategories     []string              `yaml:"flavor_categories" validate:"required,min=1,dive,required"`
	RankingAxisOverrides map[string]string     `yaml:"ranking_axis_overrides"`
	Products             []models.Product      `yaml:"products" validate:"dive"`
	Outcomes             []models.BlendOutcome `yaml:"outcomes" validate:"dive"`
	BlendSizes           []models.ProductSize  `yaml:"blend_sizes" validate:"dive"`
}

// Store is the immutable product and blend outcome catalog.
// It is safe for concurrent readers; every read returns a copy the caller may modify.
type Store struct {
	products         []models.Product
	productIndex     map[string]int
	outcomes         []models.BlendOutcome
	outcomeIndex     map[string]int
	axes             []string
	flavorCategories []string
	blendSizes       []models.ProductSize
	overrides        map[string]string
}

// New validates def and builds a Store from it.
// Any violation is reported as an *IntegrityError and no Store is returned.
func New(def Definition) (*Store, error) {
	if err := validateDefinition(def); err != nil {
		return nil, err
	}

	s := &Store{
		products:         models.CloneProducts(def.Products),
		productIndex:     make(map[string]int, len(def.Products)),
		outcomes:         models.CloneOutcomes(def.Outcomes),
		outcomeIndex:     make(map[string]int, len(def.Outcomes)),
		axes:             slices.Clone(def.Axes),
		flavorCategories: slices.Clone(def.FlavorCategories),
		blendSizes:       slices.Clone(def.BlendSizes),
		overrides:        maps.Clone(def.RankingAxisOverrides),
	}
	if s.overrides == nil {
		s.overrides = map[string]string{}
	}
	for i, p := range s.products {
		s.productIndex[p.ID] = i
	}
	for i, o := range s.outcomes {
		s.outcomeIndex[o.ID] = i
	}

	return s, nil
}

// ListProducts returns every product in definition order
func (s *Store) ListProducts() []models.Product {
	return models.CloneProducts(s.products)
}

// GetProduct returns the product with the given id, or ErrNotFound
func (s *Store) GetProduct(id string) (models.Product, error) {
	i, ok := s.productIndex[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return s.products[i].Clone(), nil
}

// ListBlendOutcomes returns every blend outcome in definition order
func (s *Store) ListBlendOutcomes() []models.BlendOutcome {
	return models.CloneOutcomes(s.outcomes)
}

// Outcome returns the blend outcome with the given id, or ErrNotFound
func (s *Store) Outcome(id string) (models.BlendOutcome, error) {
	i, ok := s.outcomeIndex[id]
	if !ok {
		return models.BlendOutcome{}, fmt.Errorf("outcome %q: %w", id, ErrNotFound)
	}
	return s.outcomes[i].Clone(), nil
}

// AxisVocabulary returns the recognized alignment/contribution axes in order
func (s *Store) AxisVocabulary() []string {
	return slices.Clone(s.axes)
}

// FlavorCategoryVocabulary returns the recognized flavor categories in order
func (s *Store) FlavorCategoryVocabulary() []string {
	return slices.Clone(s.flavorCategories)
}

// BlendSizes returns the sizes a custom blend can be ordered in
func (s *Store) BlendSizes() []models.ProductSize {
	return slices.Clone(s.blendSizes)
}

// RankingAxisOverride returns the override axis for an outcome id, if one is configured
func (s *Store) RankingAxisOverride(outcomeID string) (string, bool) {
	axis, ok := s.overrides[outcomeID]
	return axis, ok
}

// RankingAxisOverrides returns a copy of the override table
func (s *Store) RankingAxisOverrides() map[string]string {
	return maps.Clone(s.overrides)
}

// AsymmetricIncompatibilities lists every flavor pair where the first names the
// second as incompatible but the second does not name the first.
func (s *Store) AsymmetricIncompatibilities() []Asymmetry {
	var found []Asymmetry
	for _, outcome := range s.outcomes {
		for _, flavor := range outcome.Flavors {
			for _, otherID := range flavor.IncompatibleWith {
				other, ok := outcome.FindFlavor(otherID)
				if !ok || other.IsIncompatibleWith(flavor.ID) {
					continue
				}
				found = append(found, Asymmetry{OutcomeID: outcome.ID, FlavorID: flavor.ID, ListedID: otherID})
			}
		}
	}
	return found
}

// Asymmetry is a one-directional incompatibility entry
type Asymmetry struct {
	OutcomeID string
	FlavorID  string
	ListedID  string
}
