package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{
	"investors": [
		{"id": "inv1", "name": "Kongu Angels", "location": "Coimbatore", "state": "Tamil Nadu",
		 "sectors": ["AgriTech", "SaaS"], "stage": ["Seed"], "source": "Deck 2024"}
	],
	"schemes": [
		{"id": "sisfs", "name": "Seed Fund", "type": "Central Government",
		 "eligibility": {"stage": ["Idea", "MVP"]}},
		{"id": "tanseed", "name": "TANSEED", "type": "State Government", "state": "Tamil Nadu"}
	],
	"opportunities": [
		{"id": "opp1", "name": "AgriTech Challenge", "type": "Grant", "organizer": "MoA",
		 "eligibility": {"sectors": ["AgriTech"]}}
	],
	"locations": {
		"states": {
			"Tamil Nadu": {"region": "South India", "cities": ["Chennai", "Coimbatore"]}
		}
	},
	"funding_routes": {
		"idea_stage": [{"title": "DPIIT Recognition"}]
	}
}`

func TestParse_RequiredKeys(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)
	assert.Len(t, data.Investors, 1)
	assert.Len(t, data.Schemes, 2)
	assert.Len(t, data.Opportunities, 1)
	assert.Len(t, data.Locations.States, 1)
}

func TestParse_MissingTopLevelKeyIsFatal(t *testing.T) {
	for _, doc := range []string{
		`{"schemes": [], "opportunities": [], "locations": {}}`,
		`{"investors": [], "opportunities": [], "locations": {}}`,
		`{"investors": [], "schemes": [], "locations": {}}`,
		`{"investors": [], "schemes": [], "opportunities": []}`,
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, "doc %s should fail", doc)
	}
}

func TestParse_OptionalFieldsDefault(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	inv := data.Investors[0]
	assert.Empty(t, inv.TicketSize)
	assert.Empty(t, inv.PortfolioCompanies)
	assert.Empty(t, data.Schemes[1].Eligibility.Stage)
	assert.Empty(t, data.UserProfile.Name)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestFilterInvestors(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	assert.Len(t, data.FilterInvestors("AgriTech", "", ""), 1)
	assert.Len(t, data.FilterInvestors("agritech", "tamil nadu", "seed"), 1)
	assert.Empty(t, data.FilterInvestors("FinTech", "", ""))
	assert.Empty(t, data.FilterInvestors("AgriTech", "Rajasthan", ""))
}

func TestFilterSchemes_CentralMatchesAnyState(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	// The central scheme has no state field, so it matches every state filter
	schemes := data.FilterSchemes("Rajasthan", "")
	require.Len(t, schemes, 1)
	assert.Equal(t, "sisfs", schemes[0].ID)

	schemes = data.FilterSchemes("Tamil Nadu", "")
	assert.Len(t, schemes, 2)
}

func TestFilterSchemes_StageRestriction(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	// TANSEED has no stage restriction, SISFS allows Idea/MVP
	assert.Len(t, data.FilterSchemes("", "Idea"), 2)
	assert.Len(t, data.FilterSchemes("", "Growth"), 1)
}

func TestFilterOpportunities(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	assert.Len(t, data.FilterOpportunities("AgriTech", ""), 1)
	assert.Empty(t, data.FilterOpportunities("FinTech", ""))
	assert.Len(t, data.FilterOpportunities("", "Grant"), 1)
	assert.Empty(t, data.FilterOpportunities("", "Hackathon"))
}

func TestFundingRoute_FallsBackToIdeaStage(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	route := data.FundingRoute("growth")
	require.Len(t, route, 1)
	assert.Equal(t, "DPIIT Recognition", route[0].Title)
}

func TestSearchAll(t *testing.T) {
	data, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	results := data.SearchAll("agritech")
	assert.Len(t, results.Investors, 1)
	assert.Len(t, results.Opportunities, 1)
	assert.Empty(t, results.Schemes)
	assert.Contains(t, results.Sources, "[Source: Deck 2024]")

	// Records without a source get the kind-specific fallback citation
	results = data.SearchAll("TANSEED")
	require.Len(t, results.Schemes, 1)
	assert.Contains(t, results.Sources, "[Source: Policy Document]")
}
