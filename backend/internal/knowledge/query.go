package knowledge

import "strings"

// QueryEntity is a single hit in a query result
type QueryEntity struct {
	Type       EntityType `json:"type"`
	Name       string     `json:"name"`
	Properties Props      `json:"properties"`
}

// QueryResult holds matched entities plus their deduplicated source citations
type QueryResult struct {
	Entities []QueryEntity `json:"entities"`
	Sources  []string      `json:"sources"`
}

// ExecuteQuery runs a keyword-pattern query against the graph. The keyword
// checks establish a priority among ambiguous queries: investor before
// scheme before opportunity. Location and sector mentions are extracted by
// scanning all entity names for substring presence in the query text.
func (g *Graph) ExecuteQuery(query string) QueryResult {
	queryLower := strings.ToLower(query)
	result := QueryResult{Entities: []QueryEntity{}, Sources: []string{}}

	switch {
	case strings.Contains(queryLower, "investor"):
		location := g.extractMention(queryLower, EntityCity, EntityState, EntityRegion)
		sector := g.extractMention(queryLower, EntitySector)

		var investors []*Entity
		switch {
		case location != "" && sector != "":
			locationIDs := make(map[string]bool)
			for _, m := range g.FindInvestorsInLocation(location) {
				locationIDs[m.Investor.ID] = true
			}
			for _, inv := range g.FindInvestorsInSector(sector) {
				if locationIDs[inv.ID] {
					investors = append(investors, inv)
				}
			}
		case location != "":
			for _, m := range g.FindInvestorsInLocation(location) {
				investors = append(investors, m.Investor)
			}
		case sector != "":
			investors = g.FindInvestorsInSector(sector)
		default:
			investors = g.FindByType(EntityInvestor)
		}
		result.collect(investors)

	case strings.Contains(queryLower, "scheme"), strings.Contains(queryLower, "grant"), strings.Contains(queryLower, "fund"):
		var schemes []*Entity
		if state := g.extractMention(queryLower, EntityState); state != "" {
			schemes = g.FindSchemesInState(state)
		} else {
			schemes = g.FindByType(EntityScheme)
		}
		result.collect(schemes)

	case strings.Contains(queryLower, "opportunity"), strings.Contains(queryLower, "hackathon"), strings.Contains(queryLower, "accelerator"):
		result.collect(g.FindByType(EntityOpportunity))
	}

	result.Sources = dedupe(result.Sources)
	return result
}

// extractMention returns the name of the first entity of any of the given
// types whose name appears as a substring of the query
func (g *Graph) extractMention(queryLower string, types ...EntityType) string {
	for _, id := range g.order {
		e := g.entities[id]
		for _, t := range types {
			if e.Type == t && strings.Contains(queryLower, strings.ToLower(e.Name)) {
				return e.Name
			}
		}
	}
	return ""
}

func (r *QueryResult) collect(entities []*Entity) {
	for _, e := range entities {
		r.Entities = append(r.Entities, QueryEntity{Type: e.Type, Name: e.Name, Properties: e.Props})
		if e.Props != nil {
			if src := e.Props.Source(); src != "" {
				r.Sources = append(r.Sources, src)
			}
		}
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
