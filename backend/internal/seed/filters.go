package seed

import (
	"fmt"
	"strings"
)

// FilterInvestors returns investors matching the given filters. Empty filter
// values match everything.
func (d *Data) FilterInvestors(sector, state, stage string) []Investor {
	var results []Investor
	for _, inv := range d.Investors {
		if sector != "" && !containsFold(inv.Sectors, sector) {
			continue
		}
		if state != "" && !strings.EqualFold(inv.State, state) {
			continue
		}
		if stage != "" && !containsFold(inv.Stage, stage) {
			continue
		}
		results = append(results, inv)
	}
	return results
}

// FilterSchemes returns schemes matching the given filters. A scheme with no
// state field (central government) matches any state filter.
func (d *Data) FilterSchemes(state, stage string) []Scheme {
	var results []Scheme
	for _, scheme := range d.Schemes {
		if state != "" && scheme.State != "" && !strings.EqualFold(scheme.State, state) {
			continue
		}
		if stage != "" && len(scheme.Eligibility.Stage) > 0 && !containsFold(scheme.Eligibility.Stage, stage) {
			continue
		}
		results = append(results, scheme)
	}
	return results
}

// FilterOpportunities returns opportunities matching the given filters. An
// opportunity with no sector restriction matches any sector filter.
func (d *Data) FilterOpportunities(sector, oppType string) []Opportunity {
	var results []Opportunity
	for _, opp := range d.Opportunities {
		if sector != "" && len(opp.Eligibility.Sectors) > 0 && !containsFold(opp.Eligibility.Sectors, sector) {
			continue
		}
		if oppType != "" && !strings.EqualFold(opp.Type, oppType) {
			continue
		}
		results = append(results, opp)
	}
	return results
}

// FundingRoute returns the route steps for a startup stage, falling back to
// the idea-stage route when the stage has no dedicated route.
func (d *Data) FundingRoute(stage string) []RouteStep {
	key := strings.ToLower(stage) + "_stage"
	if route, ok := d.FundingRoutes[key]; ok {
		return route
	}
	return d.FundingRoutes["idea_stage"]
}

// SearchResults groups keyword search hits by record kind with their source
// citations
type SearchResults struct {
	Investors     []Investor    `json:"investors"`
	Schemes       []Scheme      `json:"schemes"`
	Opportunities []Opportunity `json:"opportunities"`
	Sources       []string      `json:"sources"`
}

// SearchAll performs a case-insensitive keyword search across all record
// kinds and collects source citations for each hit.
func (d *Data) SearchAll(query string) SearchResults {
	q := strings.ToLower(query)
	var results SearchResults

	for _, inv := range d.Investors {
		searchable := strings.ToLower(fmt.Sprintf("%s %s %s %s %s",
			inv.Name, inv.Location, inv.State, strings.Join(inv.Sectors, " "), inv.InvestmentThesis))
		if strings.Contains(searchable, q) {
			results.Investors = append(results.Investors, inv)
			results.Sources = append(results.Sources, citation(inv.Source, "Database"))
		}
	}
	for _, scheme := range d.Schemes {
		searchable := strings.ToLower(fmt.Sprintf("%s %s %s", scheme.Name, scheme.State, scheme.Department))
		if strings.Contains(searchable, q) {
			results.Schemes = append(results.Schemes, scheme)
			results.Sources = append(results.Sources, citation(scheme.Source, "Policy Document"))
		}
	}
	for _, opp := range d.Opportunities {
		searchable := strings.ToLower(fmt.Sprintf("%s %s %s", opp.Name, opp.Organizer, opp.Type))
		if strings.Contains(searchable, q) {
			results.Opportunities = append(results.Opportunities, opp)
			results.Sources = append(results.Sources, citation(opp.Source, "Events Calendar"))
		}
	}
	return results
}

func citation(source, fallback string) string {
	if source == "" {
		source = fallback
	}
	return fmt.Sprintf("[Source: %s]", source)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
