package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yishak-cs/tea_alchemy/internal/catalog"
	"github.com/yishak-cs/tea_alchemy/internal/models"
)

// MaxBasesShown is how many bases the configurator presents per outcome
const MaxBasesShown = 6

// ErrInvalidReference is returned when an id does not belong to the outcome being configured
var ErrInvalidReference = errors.New("invalid reference")

// Reference kinds reported by InvalidReferenceError.
const (
	KindBase      = "base"
	KindBotanical = "botanical"
	KindFlavor    = "flavor"
)

// InvalidReferenceError names the component id that is not part of the outcome
type InvalidReferenceError struct {
	OutcomeID string
	Kind      string
	ID        string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not belong to outcome %q", e.Kind, e.ID, e.OutcomeID)
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}

// RecommendationService ranks blend outcome bases and validates blend selections
// against the immutable catalog. It holds no mutable state.
type RecommendationService struct {
	store    *catalog.Store
	outcomes []models.BlendOutcome
}

// NewRecommendationService creates a new recommendation service.
// Ranked views are computed once here since the catalog never changes after startup.
func NewRecommendationService(store *catalog.Store) *RecommendationService {
	s := &RecommendationService{store: store}

	source := store.ListBlendOutcomes()
	s.outcomes = make([]models.BlendOutcome, len(source))
	for i, outcome := range source {
		view := outcome
		view.Bases = RankBases(outcome.Bases, s.RankingAxis(outcome), MaxBasesShown)
		s.outcomes[i] = view
	}

	return s
}

// RankingAxis resolves the axis an outcome's bases are ranked on: the override
// table entry for its id when present, otherwise its title.
func (s *RecommendationService) RankingAxis(outcome models.BlendOutcome) string {
	if axis, ok := s.store.RankingAxisOverride(outcome.ID); ok {
		return axis
	}
	return outcome.Title
}

// RankBases returns a new slice of bases ordered by their alignment on axis,
// highest first, keeping definition order among equal scores, cut to limit.
func RankBases(bases []models.Base, axis string, limit int) []models.Base {
	ranked := slices.Clone(bases)
	slices.SortStableFunc(ranked, func(a, b models.Base) int {
		return b.Alignment.Get(axis) - a.Alignment.Get(axis)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BuildBlendOutcomes returns every outcome with its bases ranked and truncated to MaxBasesShown
func (s *RecommendationService) BuildBlendOutcomes() []models.BlendOutcome {
	return models.CloneOutcomes(s.outcomes)
}

// Configurator bundles the data the custom blend pages render from
func (s *RecommendationService) Configurator() models.Configurator {
	return models.Configurator{
		Outcomes:         s.BuildBlendOutcomes(),
		Axes:             s.store.AxisVocabulary(),
		FlavorCategories: s.store.FlavorCategoryVocabulary(),
		BlendSizes:       s.store.BlendSizes(),
		Currency:         models.CurrencyCode,
	}
}

// CheckCompatible reports every pair of selected flavors where either lists the
// other as incompatible. Pairs are reported in the order they are found scanning
// the selection as given; repeated ids count once. Every id must belong to the outcome.
func (s *RecommendationService) CheckCompatible(outcomeID string, flavorIDs []string) (models.CompatibilityResult, error) {
	outcome, err := s.store.Outcome(outcomeID)
	if err != nil {
		return models.CompatibilityResult{}, err
	}

	flavors, err := resolveFlavors(outcome, flavorIDs)
	if err != nil {
		return models.CompatibilityResult{}, err
	}

	return checkFlavors(flavors), nil
}

func checkFlavors(flavors []models.Flavor) models.CompatibilityResult {
	result := models.CompatibilityResult{
		Status:    models.CompatibilityOK,
		Conflicts: []models.ConflictPair{},
	}
	for i := 0; i < len(flavors); i++ {
		for j := i + 1; j < len(flavors); j++ {
			a, b := flavors[i], flavors[j]
			if a.IsIncompatibleWith(b.ID) || b.IsIncompatibleWith(a.ID) {
				result.Conflicts = append(result.Conflicts, models.ConflictPair{First: a.ID, Second: b.ID})
			}
		}
	}
	if len(result.Conflicts) > 0 {
		result.Status = models.CompatibilityConflict
	}
	return result
}

// ScoreSelection sums the chosen base's alignment with each chosen botanical's
// contributions over the full axis vocabulary. Flavors only feed the spectrum
// read-out and the compatibility result.
func (s *RecommendationService) ScoreSelection(outcomeID string, selection models.BlendSelection) (models.SelectionScore, error) {
	outcome, err := s.store.Outcome(outcomeID)
	if err != nil {
		return models.SelectionScore{}, err
	}

	base, ok := outcome.FindBase(selection.BaseID)
	if !ok {
		return models.SelectionScore{}, &InvalidReferenceError{OutcomeID: outcomeID, Kind: KindBase, ID: selection.BaseID}
	}

	botanicals, err := resolveBotanicals(outcome, selection.BotanicalIDs)
	if err != nil {
		return models.SelectionScore{}, err
	}

	flavors, err := resolveFlavors(outcome, selection.FlavorIDs)
	if err != nil {
		return models.SelectionScore{}, err
	}

	vocabulary := s.store.AxisVocabulary()
	score := models.SelectionScore{
		OutcomeID:     outcomeID,
		Axes:          make(models.AxisScores, len(vocabulary)),
		Spectrum:      make(map[string]int),
		Unpaired:      []string{},
		Compatibility: checkFlavors(flavors),
	}

	for _, axis := range vocabulary {
		total := base.Alignment.Get(axis)
		for _, botanical := range botanicals {
			total += botanical.Contributions.Get(axis)
		}
		score.Axes[axis] = total
	}
	score.DominantAxis = dominantAxis(vocabulary, score.Axes)

	for _, category := range s.store.FlavorCategoryVocabulary() {
		score.Spectrum[category] = 0
	}
	for _, flavor := range flavors {
		for category, weight := range flavor.Spectrum {
			score.Spectrum[category] += weight
		}
	}

	for _, botanical := range botanicals {
		if !botanical.PairsWith(base.ID) {
			score.Unpaired = append(score.Unpaired, botanical.ID)
		}
	}
	for _, flavor := range flavors {
		if !flavor.PairsWith(base.ID) {
			score.Unpaired = append(score.Unpaired, flavor.ID)
		}
	}

	return score, nil
}

// dominantAxis picks the highest total; ties go to the axis listed first
func dominantAxis(vocabulary []string, totals models.AxisScores) string {
	best := ""
	bestScore := 0
	for _, axis := range vocabulary {
		if best == "" || totals[axis] > bestScore {
			best = axis
			bestScore = totals[axis]
		}
	}
	return best
}

func resolveFlavors(outcome models.BlendOutcome, ids []string) ([]models.Flavor, error) {
	flavors := make([]models.Flavor, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		flavor, ok := outcome.FindFlavor(id)
		if !ok {
			return nil, &InvalidReferenceError{OutcomeID: outcome.ID, Kind: KindFlavor, ID: id}
		}
		flavors = append(flavors, flavor)
	}
	return flavors, nil
}

func resolveBotanicals(outcome models.BlendOutcome, ids []string) ([]models.Botanical, error) {
	botanicals := make([]models.Botanical, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		botanical, ok := outcome.FindBotanical(id)
		if !ok {
			return nil, &InvalidReferenceError{OutcomeID: outcome.ID, Kind: KindBotanical, ID: id}
		}
		botanicals = append(botanicals, botanical)
	}
	return botanicals, nil
}
