package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yishak-cs/tea_alchemy/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateDefinition checks field-level rules through struct tags, then the
// cross-reference rules the tags cannot express. Every problem is collected.
func validateDefinition(def Definition) error {
	ierr := &IntegrityError{}

	if err := structValidator().Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if fe.Param() != "" {
				ierr.addf("%s: failed %s=%s (value %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
			} else {
				ierr.addf("%s: failed %s", fe.Namespace(), fe.Tag())
			}
		}
	}

	axes := toSet(def.Axes)
	categories := toSet(def.FlavorCategories)

	checkDuplicates(ierr, "product", productIDs(def.Products))
	checkDuplicates(ierr, "outcome", outcomeIDs(def.Outcomes))
	checkDuplicates(ierr, "axis", def.Axes)
	checkDuplicates(ierr, "flavor category", def.FlavorCategories)

	outcomes := toSet(outcomeIDs(def.Outcomes))
	for _, outcomeID := range sortedKeys(def.RankingAxisOverrides) {
		axis := def.RankingAxisOverrides[outcomeID]
		if !outcomes[outcomeID] {
			ierr.addf("ranking axis override names unknown outcome %q", outcomeID)
		}
		if !axes[axis] {
			ierr.addf("ranking axis override for %q names unknown axis %q", outcomeID, axis)
		}
	}

	for _, o := range def.Outcomes {
		validateOutcome(ierr, o, def.RankingAxisOverrides, axes, categories)
	}

	if len(ierr.Problems) > 0 {
		return ierr
	}
	return nil
}

func validateOutcome(ierr *IntegrityError, o models.BlendOutcome, overrides map[string]string, axes, categories map[string]bool) {
	rankingAxis := o.Title
	if axis, ok := overrides[o.ID]; ok {
		rankingAxis = axis
	}
	if !axes[rankingAxis] {
		ierr.addf("outcome %q ranks on %q which is not a recognized axis", o.ID, rankingAxis)
	}

	baseIDs := make([]string, len(o.Bases))
	for i, b := range o.Bases {
		baseIDs[i] = b.ID
		for _, axis := range sortedKeys(b.Alignment) {
			if !axes[axis] {
				ierr.addf("outcome %q base %q: alignment names unknown axis %q", o.ID, b.ID, axis)
			}
		}
	}
	checkDuplicates(ierr, fmt.Sprintf("outcome %q base", o.ID), baseIDs)
	bases := toSet(baseIDs)

	botanicalIDs := make([]string, len(o.Botanicals))
	for i, b := range o.Botanicals {
		botanicalIDs[i] = b.ID
		for _, axis := range sortedKeys(b.Contributions) {
			if !axes[axis] {
				ierr.addf("outcome %q botanical %q: contributions name unknown axis %q", o.ID, b.ID, axis)
			}
		}
		for _, ref := range b.BaseIDs {
			if !bases[ref] {
				ierr.addf("outcome %q botanical %q references missing base %q", o.ID, b.ID, ref)
			}
		}
	}
	checkDuplicates(ierr, fmt.Sprintf("outcome %q botanical", o.ID), botanicalIDs)

	flavorIDs := make([]string, len(o.Flavors))
	for i, f := range o.Flavors {
		flavorIDs[i] = f.ID
	}
	checkDuplicates(ierr, fmt.Sprintf("outcome %q flavor", o.ID), flavorIDs)
	flavors := toSet(flavorIDs)

	for _, f := range o.Flavors {
		if f.Category != "" && !categories[f.Category] {
			ierr.addf("outcome %q flavor %q has unknown category %q", o.ID, f.ID, f.Category)
		}
		for _, category := range sortedKeys(f.Spectrum) {
			if !categories[category] {
				ierr.addf("outcome %q flavor %q: spectrum names unknown category %q", o.ID, f.ID, category)
			}
		}
		for _, ref := range f.BaseIDs {
			if !bases[ref] {
				ierr.addf("outcome %q flavor %q references missing base %q", o.ID, f.ID, ref)
			}
		}
		for _, ref := range f.IncompatibleWith {
			switch {
			case ref == f.ID:
				ierr.addf("outcome %q flavor %q lists itself as incompatible", o.ID, f.ID)
			case !flavors[ref]:
				ierr.addf("outcome %q flavor %q is incompatible with missing flavor %q", o.ID, f.ID, ref)
			}
		}
	}
}

func checkDuplicates(ierr *IntegrityError, kind string, ids []string) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			ierr.addf("duplicate %s id %q", kind, id)
		}
		seen[id] = true
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func outcomeIDs(outcomes []models.BlendOutcome) []string {
	ids := make([]string, len(outcomes))
	for i, o := range outcomes {
		ids[i] = o.ID
	}
	return ids
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// sortedKeys keeps problem reports in a stable order
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

