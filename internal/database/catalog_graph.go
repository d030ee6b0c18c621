package database

import (
	"context"
	"fmt"

	"github.com/yishak-cs/tea_alchemy/internal/catalog"
	"github.com/yishak-cs/tea_alchemy/internal/logging"
)

// GraphClient is the subset of Neo4jClient the exporter uses
type GraphClient interface {
	ExecuteWrite(ctx context.Context, query string, params map[string]interface{}) error
	ExecuteRead(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
}

// CatalogGraphExporter mirrors the immutable catalog into Neo4j.
// Nothing reads the mirror back; it exists for exploration and reporting.
type CatalogGraphExporter struct {
	client GraphClient
}

// NewCatalogGraphExporter creates a new catalog exporter
func NewCatalogGraphExporter(client GraphClient) *CatalogGraphExporter {
	return &CatalogGraphExporter{client: client}
}

// catalogLabels are the node labels the exporter owns
var catalogLabels = []string{"Product", "Outcome", "Base", "Botanical", "Flavor"}

const (
	clearCatalogQuery = `
		MATCH (n)
		WHERE n:Product OR n:Outcome OR n:Base OR n:Botanical OR n:Flavor
		DETACH DELETE n
	`

	productsQuery = `
		UNWIND $rows AS row
		MERGE (p:Product {id: row.id})
		SET p.name = row.name,
			p.description = row.description,
			p.outcomes = row.outcomes,
			p.size_labels = row.size_labels,
			p.size_grams = row.size_grams,
			p.size_prices = row.size_prices,
			p.currency = row.currency
	`

	outcomesQuery = `
		UNWIND $rows AS row
		MERGE (o:Outcome {id: row.id})
		SET o.title = row.title,
			o.description = row.description,
			o.ranking_axis = row.ranking_axis
	`

	basesQuery = `
		UNWIND $rows AS row
		MATCH (o:Outcome {id: row.outcome_id})
		MERGE (b:Base {outcome_id: row.outcome_id, id: row.id})
		SET b.title = row.title,
			b.description = row.description,
			b += row.alignment
		MERGE (b)-[:BASE_FOR]->(o)
	`

	botanicalsQuery = `
		UNWIND $rows AS row
		MATCH (o:Outcome {id: row.outcome_id})
		MERGE (b:Botanical {outcome_id: row.outcome_id, id: row.id})
		SET b.title = row.title,
			b.attributes = row.attributes,
			b += row.contributions
		MERGE (b)-[:BOTANICAL_FOR]->(o)
	`

	flavorsQuery = `
		UNWIND $rows AS row
		MATCH (o:Outcome {id: row.outcome_id})
		MERGE (f:Flavor {outcome_id: row.outcome_id, id: row.id})
		SET f.title = row.title,
			f.category = row.category,
			f.notes = row.notes,
			f += row.spectrum
		MERGE (f)-[:FLAVOR_FOR]->(o)
	`

	botanicalPairingsQuery = `
		UNWIND $rows AS row
		MATCH (x:Botanical {outcome_id: row.outcome_id, id: row.from_id})
		MATCH (b:Base {outcome_id: row.outcome_id, id: row.to_id})
		MERGE (x)-[:PAIRS_WITH]->(b)
	`

	flavorPairingsQuery = `
		UNWIND $rows AS row
		MATCH (x:Flavor {outcome_id: row.outcome_id, id: row.from_id})
		MATCH (b:Base {outcome_id: row.outcome_id, id: row.to_id})
		MERGE (x)-[:PAIRS_WITH]->(b)
	`

	incompatibilitiesQuery = `
		UNWIND $rows AS row
		MATCH (a:Flavor {outcome_id: row.outcome_id, id: row.from_id})
		MATCH (b:Flavor {outcome_id: row.outcome_id, id: row.to_id})
		MERGE (a)-[:INCOMPATIBLE_WITH]->(b)
	`

	statusQuery = `
		MATCH (n)
		WHERE n:Product OR n:Outcome OR n:Base OR n:Botanical OR n:Flavor
		RETURN labels(n)[0] AS label, count(n) AS count
	`
)

// Export replaces the mirrored catalog with the store's contents
func (e *CatalogGraphExporter) Export(ctx context.Context, store *catalog.Store) error {
	logging.Info().Msg("Starting catalog graph export")

	if err := e.client.ExecuteWrite(ctx, clearCatalogQuery, nil); err != nil {
		return fmt.Errorf("failed to clear catalog graph: %w", err)
	}

	// Nodes before the relationships that match on them.
	steps := []struct {
		name  string
		query string
		rows  []map[string]interface{}
	}{
		{"products", productsQuery, productRows(store)},
		{"outcomes", outcomesQuery, outcomeRows(store)},
		{"bases", basesQuery, baseRows(store)},
		{"botanicals", botanicalsQuery, botanicalRows(store)},
		{"flavors", flavorsQuery, flavorRows(store)},
		{"botanical_pairings", botanicalPairingsQuery, botanicalPairingRows(store)},
		{"flavor_pairings", flavorPairingsQuery, flavorPairingRows(store)},
		{"incompatibilities", incompatibilitiesQuery, incompatibilityRows(store)},
	}

	for _, step := range steps {
		if len(step.rows) == 0 {
			logging.Debug().Str("step", step.name).Msg("Nothing to export")
			continue
		}
		if err := e.client.ExecuteWrite(ctx, step.query, map[string]interface{}{"rows": step.rows}); err != nil {
			return fmt.Errorf("failed to export %s: %w", step.name, err)
		}
		logging.Info().Str("step", step.name).Int("rows", len(step.rows)).Msg("Exported")
	}

	logging.Info().Msg("Catalog graph export completed")
	return nil
}

// Status returns the number of mirrored nodes per catalog label
func (e *CatalogGraphExporter) Status(ctx context.Context) (map[string]int, error) {
	results, err := e.client.ExecuteRead(ctx, statusQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog graph status: %w", err)
	}

	status := make(map[string]int, len(catalogLabels))
	for _, label := range catalogLabels {
		status[label] = 0
	}
	for _, result := range results {
		label, _ := result["label"].(string)
		count, _ := result["count"].(int64)
		status[label] += int(count)
	}

	return status, nil
}
