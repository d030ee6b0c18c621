package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yishak-cs/tea_alchemy/internal/models"
)

func newDefaultStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(Default())
	require.NoError(t, err)
	return store
}

func TestNew_DefaultCatalogIsValid(t *testing.T) {
	store := newDefaultStore(t)

	assert.Len(t, store.ListProducts(), 4)
	assert.Len(t, store.ListBlendOutcomes(), 4)
	assert.Equal(t, []string{"Sleep", "Calm", "Focus", "Alertness"}, store.AxisVocabulary())
	assert.Equal(t, []string{"Floral", "Citrus", "Earthy", "Spicy", "Sweet"}, store.FlavorCategoryVocabulary())
	assert.NotEmpty(t, store.BlendSizes())
}

func TestStore_ListProductsKeepsDefinitionOrder(t *testing.T) {
	store := newDefaultStore(t)

	var ids []string
	for _, p := range store.ListProducts() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"solstice-rest", "coastal-focus", "morning-spark", "quiet-glow"}, ids)
}

func TestStore_GetProduct(t *testing.T) {
	store := newDefaultStore(t)

	t.Run("existing product", func(t *testing.T) {
		product, err := store.GetProduct("solstice-rest")
		require.NoError(t, err)
		assert.Equal(t, "Solstice Rest", product.Name)
		assert.Equal(t, []string{"Sleep", "Calm"}, product.Outcomes)
		require.Len(t, product.Sizes, 2)
		assert.Equal(t, models.ProductSize{Label: "50g", Grams: 50, Price: 18.0}, product.Sizes[0])
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := store.GetProduct("nonexistent")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestStore_Outcome(t *testing.T) {
	store := newDefaultStore(t)

	outcome, err := store.Outcome("energy")
	require.NoError(t, err)
	assert.Equal(t, "Energy", outcome.Title)

	_, err = store.Outcome("hangover")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListBlendOutcomesKeepsDefinitionOrder(t *testing.T) {
	store := newDefaultStore(t)

	var ids []string
	for _, o := range store.ListBlendOutcomes() {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"sleep", "calm", "focus", "energy"}, ids)
}

func TestStore_RankingAxisOverride(t *testing.T) {
	store := newDefaultStore(t)

	axis, ok := store.RankingAxisOverride("energy")
	assert.True(t, ok)
	assert.Equal(t, "Alertness", axis)

	_, ok = store.RankingAxisOverride("sleep")
	assert.False(t, ok)

	overrides := store.RankingAxisOverrides()
	overrides["sleep"] = "Focus"
	_, ok = store.RankingAxisOverride("sleep")
	assert.False(t, ok, "returned override table must be a copy")
}

func TestStore_IsolatedFromDefinition(t *testing.T) {
	def := Default()
	store, err := New(def)
	require.NoError(t, err)

	def.Outcomes[0].Bases[0].Alignment["Sleep"] = 0
	def.Products[0].Name = "Changed"

	outcome, err := store.Outcome("sleep")
	require.NoError(t, err)
	assert.Equal(t, 5, outcome.Bases[0].Alignment.Get("Sleep"))

	product, err := store.GetProduct("solstice-rest")
	require.NoError(t, err)
	assert.Equal(t, "Solstice Rest", product.Name)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := newDefaultStore(t)

	products := store.ListProducts()
	products[0].Sizes[0].Price = 0
	products[0].Outcomes[0] = "Changed"

	product, err := store.GetProduct("solstice-rest")
	require.NoError(t, err)
	product.Sizes[0].Price = 0

	outcomes := store.ListBlendOutcomes()
	outcomes[0].Bases[0].Alignment["Sleep"] = 0
	outcomes[0].Flavors[0].IncompatibleWith[0] = "rose-petal"

	outcome, err := store.Outcome("sleep")
	require.NoError(t, err)
	outcome.Botanicals[0].Contributions["Sleep"] = 0
	outcome.Flavors[0].Spectrum["Sweet"] = 0

	product, err = store.GetProduct("solstice-rest")
	require.NoError(t, err)
	assert.Equal(t, 18.0, product.Sizes[0].Price)
	assert.Equal(t, []string{"Sleep", "Calm"}, product.Outcomes)

	outcome, err = store.Outcome("sleep")
	require.NoError(t, err)
	assert.Equal(t, 5, outcome.Bases[0].Alignment.Get("Sleep"))
	assert.Equal(t, []string{"smoked-ginger"}, outcome.Flavors[0].IncompatibleWith)
	assert.Equal(t, 3, outcome.Botanicals[0].Contributions.Get("Sleep"))
	assert.Equal(t, 3, outcome.Flavors[0].Spectrum["Sweet"])
}

// Incompatibility is only asserted by convention in the data, so the built-in
// catalog is checked for symmetry here.
func TestDefaultCatalog_IncompatibilitiesAreSymmetric(t *testing.T) {
	store := newDefaultStore(t)
	assert.Empty(t, store.AsymmetricIncompatibilities())
}

func TestStore_AsymmetricIncompatibilities(t *testing.T) {
	def := Default()
	// drop the reverse entry for vanilla-bean -> smoked-ginger
	def.Outcomes[0].Flavors[0].IncompatibleWith = nil

	store, err := New(def)
	require.NoError(t, err)

	assert.Equal(t, []Asymmetry{
		{OutcomeID: "sleep", FlavorID: "smoked-ginger", ListedID: "vanilla-bean"},
	}, store.AsymmetricIncompatibilities())
}

func TestNew_IntegrityErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(def *Definition)
		problem string
	}{
		{
			name: "duplicate product id",
			mutate: func(def *Definition) {
				def.Products = append(def.Products, def.Products[0])
			},
			problem: `duplicate product id "solstice-rest"`,
		},
		{
			name: "duplicate outcome id",
			mutate: func(def *Definition) {
				def.Outcomes[1].ID = "sleep"
			},
			problem: `duplicate outcome id "sleep"`,
		},
		{
			name: "duplicate sibling base id",
			mutate: func(def *Definition) {
				def.Outcomes[0].Bases[1].ID = "rooibos"
			},
			problem: `duplicate outcome "sleep" base id "rooibos"`,
		},
		{
			name: "botanical references missing base",
			mutate: func(def *Definition) {
				def.Outcomes[0].Botanicals[0].BaseIDs = append(def.Outcomes[0].Botanicals[0].BaseIDs, "sencha")
			},
			problem: `outcome "sleep" botanical "lavender" references missing base "sencha"`,
		},
		{
			name: "flavor references missing base",
			mutate: func(def *Definition) {
				def.Outcomes[2].Flavors[0].BaseIDs = []string{"assam"}
			},
			problem: `outcome "focus" flavor "yuzu" references missing base "assam"`,
		},
		{
			name: "incompatibility with a flavor from another outcome",
			mutate: func(def *Definition) {
				def.Outcomes[0].Flavors[1].IncompatibleWith = []string{"bergamot"}
			},
			problem: `outcome "sleep" flavor "cocoa-husk" is incompatible with missing flavor "bergamot"`,
		},
		{
			name: "flavor incompatible with itself",
			mutate: func(def *Definition) {
				def.Outcomes[0].Flavors[1].IncompatibleWith = []string{"cocoa-husk"}
			},
			problem: `outcome "sleep" flavor "cocoa-husk" lists itself as incompatible`,
		},
		{
			name: "override names unknown axis",
			mutate: func(def *Definition) {
				def.RankingAxisOverrides["energy"] = "Vigor"
			},
			problem: `ranking axis override for "energy" names unknown axis "Vigor"`,
		},
		{
			name: "override names unknown outcome",
			mutate: func(def *Definition) {
				def.RankingAxisOverrides["digestion"] = "Calm"
			},
			problem: `ranking axis override names unknown outcome "digestion"`,
		},
		{
			name: "outcome title is not an axis and has no override",
			mutate: func(def *Definition) {
				delete(def.RankingAxisOverrides, "energy")
			},
			problem: `outcome "energy" ranks on "Energy" which is not a recognized axis`,
		},
		{
			name: "alignment names unknown axis",
			mutate: func(def *Definition) {
				def.Outcomes[0].Bases[0].Alignment["Energy"] = 2
			},
			problem: `outcome "sleep" base "rooibos": alignment names unknown axis "Energy"`,
		},
		{
			name: "flavor category outside vocabulary",
			mutate: func(def *Definition) {
				def.Outcomes[0].Flavors[0].Category = "Umami"
			},
			problem: `outcome "sleep" flavor "vanilla-bean" has unknown category "Umami"`,
		},
		{
			name: "alignment score out of range",
			mutate: func(def *Definition) {
				def.Outcomes[0].Bases[0].Alignment["Sleep"] = 9
			},
			problem: "Definition.Outcomes[0].Bases[0].Alignment[Sleep]: failed max=5 (value 9)",
		},
		{
			name: "product without sizes",
			mutate: func(def *Definition) {
				def.Products[0].Sizes = nil
			},
			problem: "Definition.Products[0].Sizes: failed required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Default()
			tt.mutate(&def)

			store, err := New(def)
			require.Error(t, err)
			assert.Nil(t, store)

			var ierr *IntegrityError
			require.ErrorAs(t, err, &ierr)
			assert.Contains(t, ierr.Problems, tt.problem)
		})
	}
}

func TestNew_CollectsEveryProblem(t *testing.T) {
	def := Default()
	def.Outcomes[0].Bases[1].ID = "rooibos"
	def.RankingAxisOverrides["energy"] = "Vigor"

	_, err := New(def)

	var ierr *IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.GreaterOrEqual(t, len(ierr.Problems), 2)
	assert.Contains(t, err.Error(), "catalog integrity check failed")
}

// Contributions are additive bonuses with no upper bound, unlike base alignment.
func TestNew_AcceptsLargeContribution(t *testing.T) {
	def := Default()
	def.Outcomes[0].Botanicals[0].Contributions["Sleep"] = 7

	store, err := New(def)
	require.NoError(t, err)

	outcome, err := store.Outcome("sleep")
	require.NoError(t, err)
	assert.Equal(t, 7, outcome.Botanicals[0].Contributions.Get("Sleep"))
}

func TestNew_RejectsNegativeContribution(t *testing.T) {
	def := Default()
	def.Outcomes[0].Botanicals[0].Contributions["Sleep"] = -1

	_, err := New(def)

	var ierr *IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Problems, "Definition.Outcomes[0].Botanicals[0].Contributions[Sleep]: failed min=0 (value -1)")
}

func TestLoadDefinitionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
axes: [Sleep, Calm]
flavor_categories: [Floral, Sweet]
products:
  - id: night-cap
    name: Night Cap
    outcomes: [Sleep]
    sizes:
      - {label: 50g, grams: 50, price: 15}
outcomes:
  - id: sleep
    title: Sleep
    bases:
      - id: rooibos
        title: Rooibos
        alignment: {Sleep: 5, Calm: 3}
      - id: honeybush
        title: Honeybush
        alignment: {Sleep: 4}
    botanicals:
      - id: lavender
        title: Lavender
        contributions: {Sleep: 2}
        base_ids: [rooibos]
    flavors:
      - id: vanilla
        title: Vanilla
        category: Sweet
        spectrum: {Sweet: 3}
        base_ids: [rooibos, honeybush]
blend_sizes:
  - {label: 50g, grams: 50, price: 20}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	def, err := LoadDefinitionFile(path)
	require.NoError(t, err)

	store, err := New(def)
	require.NoError(t, err)

	product, err := store.GetProduct("night-cap")
	require.NoError(t, err)
	assert.Equal(t, 15.0, product.Sizes[0].Price)

	outcome, err := store.Outcome("sleep")
	require.NoError(t, err)
	require.Len(t, outcome.Bases, 2)
	assert.Equal(t, 0, outcome.Bases[1].Alignment.Get("Calm"))
	assert.Equal(t, []string{"rooibos"}, outcome.Botanicals[0].BaseIDs)
}

func TestLoadDefinitionFile_Errors(t *testing.T) {
	_, err := LoadDefinitionFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axes: [Sleep\n"), 0o600))
	_, err = LoadDefinitionFile(path)
	assert.Error(t, err)
}
