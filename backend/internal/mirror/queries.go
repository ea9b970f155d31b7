package mirror

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Stats summarizes the mirror contents by label and relationship type
type Stats struct {
	Connected           bool             `json:"connected"`
	NodesByLabel        map[string]int64 `json:"nodes_by_label"`
	RelationshipsByType map[string]int64 `json:"relationships_by_type"`
	TotalNodes          int64            `json:"total_nodes"`
	TotalRelationships  int64            `json:"total_relationships"`
}

// Query runs an arbitrary Cypher read query and returns the records as maps
func (r *Repository) Query(ctx context.Context, cypher string, params map[string]interface{}) ([]map[string]interface{}, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var records []map[string]interface{}
	for result.Next(ctx) {
		records = append(records, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// FindInvestorsInLocation finds investors in a location via the mirror,
// ascending the LOCATED_IN hierarchy just like the in-memory traversal
func (r *Repository) FindInvestorsInLocation(ctx context.Context, location string) ([]map[string]interface{}, error) {
	return r.Query(ctx, `
		MATCH (loc)
		WHERE (loc:Validator_City OR loc:Validator_State OR loc:Validator_Region)
		  AND toLower(loc.name) CONTAINS toLower($location)

		OPTIONAL MATCH path = (loc)-[:LOCATED_IN*0..2]->(parent)

		WITH collect(DISTINCT loc) + collect(DISTINCT parent) AS all_locations
		UNWIND all_locations AS location

		MATCH (i:Validator_Investor)-[:OPERATES_IN]->(location)

		RETURN DISTINCT i.name AS name,
		       i.type AS type,
		       i.ticket_size AS ticket_size,
		       i.investment_thesis AS thesis,
		       i.contact_email AS email,
		       i.source AS source,
		       location.name AS matched_location
	`, map[string]interface{}{"location": location})
}

// FindInvestorsInSector finds investors investing in the given sector
func (r *Repository) FindInvestorsInSector(ctx context.Context, sector string) ([]map[string]interface{}, error) {
	return r.Query(ctx, `
		MATCH (i:Validator_Investor)-[:INVESTS_IN]->(s:Validator_Sector)
		WHERE toLower(s.name) CONTAINS toLower($sector)
		RETURN DISTINCT i.name AS name,
		       i.type AS type,
		       i.ticket_size AS ticket_size,
		       i.source AS source,
		       collect(s.name) AS sectors
	`, map[string]interface{}{"sector": sector})
}

// FindSchemesInState finds state-specific schemes plus central government
// schemes, which are available everywhere
func (r *Repository) FindSchemesInState(ctx context.Context, state string) ([]map[string]interface{}, error) {
	return r.Query(ctx, `
		MATCH (state:Validator_State)-[:OFFERS_SCHEME]->(scheme:Validator_Scheme)
		WHERE toLower(state.name) CONTAINS toLower($state)
		RETURN scheme.name AS name,
		       scheme.type AS type,
		       scheme.funding_amount AS funding,
		       scheme.source AS source,
		       state.name AS available_in

		UNION

		MATCH (scheme:Validator_Scheme)
		WHERE scheme.type = 'Central Government'
		RETURN scheme.name AS name,
		       scheme.type AS type,
		       scheme.funding_amount AS funding,
		       scheme.source AS source,
		       'All India' AS available_in
	`, map[string]interface{}{"state": state})
}

// GraphStats aggregates node and relationship counts for the mirror
func (r *Repository) GraphStats(ctx context.Context) (*Stats, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	stats := &Stats{
		Connected:           true,
		NodesByLabel:        make(map[string]int64),
		RelationshipsByType: make(map[string]int64),
	}

	result, err := session.Run(ctx, `
		MATCH (n)
		WHERE any(label IN labels(n) WHERE label STARTS WITH $prefix)
		WITH labels(n) AS nodeLabels
		UNWIND nodeLabels AS label
		WITH label WHERE label STARTS WITH $prefix
		RETURN label, count(*) AS count
		ORDER BY count DESC
	`, map[string]interface{}{"prefix": labelPrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to count nodes by label: %w", err)
	}
	for result.Next(ctx) {
		record := result.Record()
		label, _ := record.Get("label")
		count, _ := record.Get("count")
		if name, ok := label.(string); ok {
			n := asInt64(count)
			stats.NodesByLabel[name] = n
			stats.TotalNodes += n
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read node counts: %w", err)
	}

	result, err = session.Run(ctx, `
		MATCH (n)-[r]->(m)
		WHERE any(label IN labels(n) WHERE label STARTS WITH $prefix)
		RETURN type(r) AS type, count(*) AS count
		ORDER BY count DESC
	`, map[string]interface{}{"prefix": labelPrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to count relationships: %w", err)
	}
	for result.Next(ctx) {
		record := result.Record()
		relType, _ := record.Get("type")
		count, _ := record.Get("count")
		if name, ok := relType.(string); ok {
			n := asInt64(count)
			stats.RelationshipsByType[name] = n
			stats.TotalRelationships += n
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationship counts: %w", err)
	}

	return stats, nil
}

func asInt64(val interface{}) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
