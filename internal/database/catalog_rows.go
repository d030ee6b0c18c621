package database

import (
	"github.com/yishak-cs/tea_alchemy/internal/catalog"
	"github.com/yishak-cs/tea_alchemy/internal/models"
)

// Neo4j properties cannot hold nested maps, so sizes become parallel lists and
// score maps are merged into the node as one property per axis or category.

func productRows(store *catalog.Store) []map[string]interface{} {
	products := store.ListProducts()
	rows := make([]map[string]interface{}, 0, len(products))
	for _, p := range products {
		labels := make([]string, len(p.Sizes))
		grams := make([]int64, len(p.Sizes))
		prices := make([]float64, len(p.Sizes))
		for i, size := range p.Sizes {
			labels[i] = size.Label
			grams[i] = int64(size.Grams)
			prices[i] = size.Price
		}
		rows = append(rows, map[string]interface{}{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"outcomes":    stringList(p.Outcomes),
			"size_labels": labels,
			"size_grams":  grams,
			"size_prices": prices,
			"currency":    models.CurrencyCode,
		})
	}
	return rows
}

func outcomeRows(store *catalog.Store) []map[string]interface{} {
	outcomes := store.ListBlendOutcomes()
	rows := make([]map[string]interface{}, 0, len(outcomes))
	for _, o := range outcomes {
		axis := o.Title
		if override, ok := store.RankingAxisOverride(o.ID); ok {
			axis = override
		}
		rows = append(rows, map[string]interface{}{
			"id":           o.ID,
			"title":        o.Title,
			"description":  o.Description,
			"ranking_axis": axis,
		})
	}
	return rows
}

func baseRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, b := range o.Bases {
			rows = append(rows, map[string]interface{}{
				"outcome_id":  o.ID,
				"id":          b.ID,
				"title":       b.Title,
				"description": b.Description,
				"alignment":   scoreProperties(store.AxisVocabulary(), b.Alignment),
			})
		}
	}
	return rows
}

func botanicalRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, b := range o.Botanicals {
			rows = append(rows, map[string]interface{}{
				"outcome_id":    o.ID,
				"id":            b.ID,
				"title":         b.Title,
				"attributes":    stringList(b.Attributes),
				"contributions": scoreProperties(store.AxisVocabulary(), b.Contributions),
			})
		}
	}
	return rows
}

func flavorRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, f := range o.Flavors {
			rows = append(rows, map[string]interface{}{
				"outcome_id": o.ID,
				"id":         f.ID,
				"title":      f.Title,
				"category":   f.Category,
				"notes":      stringList(f.Notes),
				"spectrum":   scoreProperties(store.FlavorCategoryVocabulary(), f.Spectrum),
			})
		}
	}
	return rows
}

func botanicalPairingRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, b := range o.Botanicals {
			rows = appendLinks(rows, o.ID, b.ID, b.BaseIDs)
		}
	}
	return rows
}

func flavorPairingRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, f := range o.Flavors {
			rows = appendLinks(rows, o.ID, f.ID, f.BaseIDs)
		}
	}
	return rows
}

func incompatibilityRows(store *catalog.Store) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, o := range store.ListBlendOutcomes() {
		for _, f := range o.Flavors {
			rows = appendLinks(rows, o.ID, f.ID, f.IncompatibleWith)
		}
	}
	return rows
}

func appendLinks(rows []map[string]interface{}, outcomeID, fromID string, toIDs []string) []map[string]interface{} {
	for _, toID := range toIDs {
		rows = append(rows, map[string]interface{}{
			"outcome_id": outcomeID,
			"from_id":    fromID,
			"to_id":      toID,
		})
	}
	return rows
}

// scoreProperties writes every vocabulary key, so a missing score is stored as 0
func scoreProperties(vocabulary []string, scores map[string]int) map[string]interface{} {
	props := make(map[string]interface{}, len(vocabulary))
	for _, key := range vocabulary {
		props[key] = int64(scores[key])
	}
	return props
}

// stringList avoids sending null for an empty list property
func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
