package knowledge

// TraverseLocationHierarchy follows LOCATED_IN edges outward from the given
// entity and returns every entity visited, including the start. The walk uses
// an explicit stack with a visited set, so callers get set membership but no
// ordering guarantee.
func (g *Graph) TraverseLocationHierarchy(entityID string) []*Entity {
	var result []*Entity
	visited := make(map[string]bool)
	stack := []string{entityID}

	for len(stack) > 0 {
		currentID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		if e := g.GetEntity(currentID); e != nil {
			result = append(result, e)
		}

		for _, rel := range g.Outgoing(currentID, RelLocatedIn) {
			if !visited[rel.TargetID] {
				stack = append(stack, rel.TargetID)
			}
		}
	}
	return result
}

// LocationMatch pairs an investor with the name of the location that matched
// it during an ancestor-inclusive lookup
type LocationMatch struct {
	Investor        *Entity `json:"investor"`
	MatchedLocation string  `json:"matched_location"`
}

// FindInvestorsInLocation returns investors operating in the named location
// or any of its ancestor locations. "Jaipur" finds investors in Jaipur and
// investors in Rajasthan. Each investor appears at most once; the first
// matching OPERATES_IN target wins.
func (g *Graph) FindInvestorsInLocation(locationName string) []LocationMatch {
	var results []LocationMatch

	locations := g.FindByName(locationName, true)
	if len(locations) == 0 {
		return results
	}

	acceptable := make(map[string]bool)
	for _, loc := range locations {
		for _, e := range g.TraverseLocationHierarchy(loc.ID) {
			acceptable[e.ID] = true
		}
	}

	for _, investor := range g.FindByType(EntityInvestor) {
		for _, rel := range g.Outgoing(investor.ID, RelOperatesIn) {
			if acceptable[rel.TargetID] {
				matched := "Unknown"
				if target := g.GetEntity(rel.TargetID); target != nil {
					matched = target.Name
				}
				results = append(results, LocationMatch{Investor: investor, MatchedLocation: matched})
				break
			}
		}
	}
	return results
}

// FindInvestorsInSector returns investors with an INVESTS_IN edge to any
// sector whose name fuzzy-matches, deduplicated per investor
func (g *Graph) FindInvestorsInSector(sectorName string) []*Entity {
	var results []*Entity

	sectorIDs := make(map[string]bool)
	for _, e := range g.FindByName(sectorName, true) {
		if e.Type == EntitySector {
			sectorIDs[e.ID] = true
		}
	}
	if len(sectorIDs) == 0 {
		return results
	}

	for _, investor := range g.FindByType(EntityInvestor) {
		for _, rel := range g.Outgoing(investor.ID, RelInvestsIn) {
			if sectorIDs[rel.TargetID] {
				results = append(results, investor)
				break
			}
		}
	}
	return results
}

// FindSchemesInState returns schemes offered by states whose name
// fuzzy-matches, plus every central government scheme (available everywhere),
// deduplicated by id
func (g *Graph) FindSchemesInState(stateName string) []*Entity {
	var results []*Entity
	added := make(map[string]bool)

	for _, state := range g.FindByName(stateName, true) {
		if state.Type != EntityState {
			continue
		}
		for _, rel := range g.Outgoing(state.ID, RelOffersScheme) {
			scheme := g.GetEntity(rel.TargetID)
			if scheme != nil && !added[scheme.ID] {
				added[scheme.ID] = true
				results = append(results, scheme)
			}
		}
	}

	for _, scheme := range g.FindByType(EntityScheme) {
		props, ok := scheme.Props.(*SchemeProps)
		if ok && props.IsCentral() && !added[scheme.ID] {
			added[scheme.ID] = true
			results = append(results, scheme)
		}
	}
	return results
}
