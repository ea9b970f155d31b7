package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityNames(entities []*Entity) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

func TestTraverseLocationHierarchy_CityToRegion(t *testing.T) {
	g := Build(testSeed())

	hierarchy := g.TraverseLocationHierarchy("city_chennai")
	assert.ElementsMatch(t, []string{"Chennai", "Tamil Nadu", "South India"}, entityNames(hierarchy))
}

func TestTraverseLocationHierarchy_IncludesStart(t *testing.T) {
	g := Build(testSeed())

	hierarchy := g.TraverseLocationHierarchy("state_rajasthan")
	assert.ElementsMatch(t, []string{"Rajasthan", "North India"}, entityNames(hierarchy))

	// A region has no outgoing LOCATED_IN edges
	hierarchy = g.TraverseLocationHierarchy("region_north_india")
	assert.ElementsMatch(t, []string{"North India"}, entityNames(hierarchy))
}

func TestTraverseLocationHierarchy_UnknownStart(t *testing.T) {
	g := Build(testSeed())
	assert.Empty(t, g.TraverseLocationHierarchy("city_atlantis"))
}

func TestTraverseLocationHierarchy_BrokenChain(t *testing.T) {
	g := Build(testSeed())

	// Goa's region edge was dropped, so the ascent stops at the state
	hierarchy := g.TraverseLocationHierarchy("city_panaji")
	assert.ElementsMatch(t, []string{"Panaji", "Goa"}, entityNames(hierarchy))
}

func TestFindInvestorsInLocation_DirectCity(t *testing.T) {
	g := Build(testSeed())

	matches := g.FindInvestorsInLocation("Jaipur")
	require.Len(t, matches, 1)
	assert.Equal(t, "Pink City Capital", matches[0].Investor.Name)
	assert.Equal(t, "Jaipur", matches[0].MatchedLocation)
}

func TestFindInvestorsInLocation_AncestorInclusive(t *testing.T) {
	g := Build(testSeed())

	// A state query finds investors operating in its cities too. Ghost
	// Ventures has a state edge only (its city edge was dropped).
	matches := g.FindInvestorsInLocation("Tamil Nadu")
	require.Len(t, matches, 2)
	assert.ElementsMatch(t,
		[]string{"Chennai Agri Angels", "Ghost Ventures"},
		[]string{matches[0].Investor.Name, matches[1].Investor.Name})
}

func TestFindInvestorsInLocation_CityInvestorFoundViaState(t *testing.T) {
	g := Build(testSeed())

	matches := g.FindInvestorsInLocation("Rajasthan")
	require.Len(t, matches, 1)
	assert.Equal(t, "Pink City Capital", matches[0].Investor.Name)
}

func TestFindInvestorsInLocation_EachInvestorOnce(t *testing.T) {
	g := Build(testSeed())

	// Chennai Agri Angels operates in both the city and the state; a state
	// query must still return it exactly once
	matches := g.FindInvestorsInLocation("Tamil Nadu")
	seen := make(map[string]int)
	for _, m := range matches {
		seen[m.Investor.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "investor %s appeared %d times", id, count)
	}
}

func TestFindInvestorsInLocation_Unknown(t *testing.T) {
	g := Build(testSeed())
	assert.Empty(t, g.FindInvestorsInLocation("Atlantis"))
}

func TestFindInvestorsInSector(t *testing.T) {
	g := Build(testSeed())

	investors := g.FindInvestorsInSector("AgriTech")
	assert.ElementsMatch(t, []string{"Chennai Agri Angels", "Ghost Ventures"}, entityNames(investors))

	investors = g.FindInvestorsInSector("fintech")
	require.Len(t, investors, 1)
	assert.Equal(t, "Pink City Capital", investors[0].Name)

	assert.Empty(t, g.FindInvestorsInSector("SpaceTech"))
}

func TestFindSchemesInState_StateAndCentral(t *testing.T) {
	g := Build(testSeed())

	schemes := g.FindSchemesInState("Tamil Nadu")
	assert.ElementsMatch(t, []string{"TANSEED", "Startup India Seed Fund Scheme"}, entityNames(schemes))
}

func TestFindSchemesInState_CentralUniversality(t *testing.T) {
	g := Build(testSeed())

	// The central scheme appears for every state, including a state with
	// zero scheme edges
	for _, state := range []string{"Rajasthan", "Goa", "Tamil Nadu"} {
		names := entityNames(g.FindSchemesInState(state))
		assert.Contains(t, names, "Startup India Seed Fund Scheme", "state %s", state)
	}
}

func TestFindSchemesInState_UnknownStateStillGetsCentral(t *testing.T) {
	g := Build(testSeed())

	schemes := g.FindSchemesInState("Atlantis")
	require.Len(t, schemes, 1)
	assert.Equal(t, "Startup India Seed Fund Scheme", schemes[0].Name)
}

func TestLocationSectorIntersection(t *testing.T) {
	g := Build(testSeed())

	// Investors with both an OPERATES_IN edge reaching Tamil Nadu's
	// hierarchy and an INVESTS_IN edge to AgriTech
	locationIDs := make(map[string]bool)
	for _, m := range g.FindInvestorsInLocation("Tamil Nadu") {
		locationIDs[m.Investor.ID] = true
	}
	var intersection []string
	for _, inv := range g.FindInvestorsInSector("AgriTech") {
		if locationIDs[inv.ID] {
			intersection = append(intersection, inv.Name)
		}
	}
	assert.ElementsMatch(t, []string{"Chennai Agri Angels", "Ghost Ventures"}, intersection)

	// FinTech ∩ Tamil Nadu is empty
	var empty []string
	for _, inv := range g.FindInvestorsInSector("FinTech") {
		if locationIDs[inv.ID] {
			empty = append(empty, inv.Name)
		}
	}
	assert.Empty(t, empty)
}

// End-to-end scenario: one complete hierarchy, one investor, one central
// scheme, exercised through every traversal operation.
func TestEndToEndScenario(t *testing.T) {
	g := Build(testSeed())

	matches := g.FindInvestorsInLocation("Jaipur")
	require.Len(t, matches, 1)

	schemes := g.FindSchemesInState("Rajasthan")
	require.Len(t, schemes, 1)
	assert.Equal(t, "Startup India Seed Fund Scheme", schemes[0].Name)

	hierarchy := g.TraverseLocationHierarchy("city_jaipur")
	assert.ElementsMatch(t, []string{"Jaipur", "Rajasthan", "North India"}, entityNames(hierarchy))
}
