package insights

import (
	"fmt"

	"sahayak/backend/internal/knowledge"
	"sahayak/backend/internal/seed"
)

// Action is a recommended next step for the founder
type Action struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Impact   string `json:"impact"`
}

// Summary is the dashboard payload: a funding-probability score, match
// counts from the knowledge graph, and recommended actions
type Summary struct {
	FundingProbability    int              `json:"funding_probability"`
	MatchingInvestors     int              `json:"matching_investors"`
	ApplicableSchemes     int              `json:"applicable_schemes"`
	ActiveOpportunity     int              `json:"active_opportunities"`
	RecommendedActions    []Action         `json:"recommended_actions"`
	UserProfile           seed.UserProfile `json:"user_profile"`
	KnowledgeGraphEnabled bool             `json:"knowledge_graph_enabled"`
}

// maxActions caps the recommended action list
const maxActions = 4

// BuildSummary scores the founder profile and matches it against the
// knowledge graph: investors by location ∩ sector, schemes by state and
// stage, opportunities by sector.
func BuildSummary(data *seed.Data, g *knowledge.Graph) Summary {
	user := data.UserProfile

	score := 50
	if user.DPIITRegistered {
		score += 15
	}
	if user.MonthlyRevenue > 0 {
		score += 20
	}
	if user.TeamSize >= 3 {
		score += 10
	}
	if user.Stage == "MVP" || user.Stage == "Revenue" {
		score += 5
	}
	if score > 95 {
		score = 95
	}

	matching := matchInvestors(g, user)
	schemes := data.FilterSchemes(user.State, user.Stage)
	opportunities := data.FilterOpportunities(user.Sector, "")

	var actions []Action
	if !user.DPIITRegistered {
		actions = append(actions, Action{
			Title:    "Register on DPIIT Portal",
			Priority: "high",
			Impact:   "+15% funding probability",
		})
	}
	if len(matching) > 0 {
		actions = append(actions, Action{
			Title:    fmt.Sprintf("Pitch to %s", matching[0].Name),
			Priority: "medium",
			Impact:   "Local angel network match",
		})
	}
	if len(schemes) > 0 {
		actions = append(actions, Action{
			Title:    fmt.Sprintf("Apply for %s", schemes[0].Name),
			Priority: "high",
			Impact:   schemes[0].FundingAmount,
		})
	}
	if len(opportunities) > 0 {
		actions = append(actions, Action{
			Title:    fmt.Sprintf("Participate in %s", opportunities[0].Name),
			Priority: "medium",
			Impact:   opportunities[0].Prize,
		})
	}
	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}

	return Summary{
		FundingProbability:    score,
		MatchingInvestors:     len(matching),
		ApplicableSchemes:     len(schemes),
		ActiveOpportunity:     len(opportunities),
		RecommendedActions:    actions,
		UserProfile:           user,
		KnowledgeGraphEnabled: g != nil,
	}
}

// matchInvestors intersects the founder's location matches with their sector
// matches. A founder without a location falls back to their state.
func matchInvestors(g *knowledge.Graph, user seed.UserProfile) []*knowledge.Entity {
	location := user.Location
	if location == "" {
		location = user.State
	}
	if location == "" || user.Sector == "" {
		return nil
	}

	locationIDs := make(map[string]bool)
	for _, m := range g.FindInvestorsInLocation(location) {
		locationIDs[m.Investor.ID] = true
	}

	var matching []*knowledge.Entity
	for _, inv := range g.FindInvestorsInSector(user.Sector) {
		if locationIDs[inv.ID] {
			matching = append(matching, inv)
		}
	}
	return matching
}
