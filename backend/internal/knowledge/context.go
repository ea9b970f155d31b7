package knowledge

import (
	"fmt"
	"strings"
)

// Metrics describes how a context block was produced, for the
// answer-generation consumer
type Metrics struct {
	Method                 string `json:"method"`
	EntitiesFound          int    `json:"entities_found"`
	RelationshipsTraversed int    `json:"relationships_traversed"`
}

// Context is the output contract of the query facade: a flat textual context
// block, deduplicated source citations, and retrieval metrics
type Context struct {
	Text    string   `json:"context"`
	Sources []string `json:"sources"`
	Metrics Metrics  `json:"metrics"`
}

// Intent identifies which handler answered a query
type Intent string

const (
	IntentInvestor     Intent = "investor"
	IntentScheme       Intent = "scheme"
	IntentOpportunity  Intent = "opportunity"
	IntentRegistration Intent = "registration"
	IntentFallback     Intent = "fallback"
)

// intentRule pairs a keyword set with its handler. Rules are evaluated in
// priority order: investor > scheme > opportunity > registration > fallback.
type intentRule struct {
	intent   Intent
	keywords []string
}

var intentRules = []intentRule{
	{IntentInvestor, []string{"investor", "invest", "fund", "angel", "vc", "venture", "who"}},
	{IntentScheme, []string{"scheme", "grant", "government", "subsidy", "eligib", "loan"}},
	{IntentOpportunity, []string{"hackathon", "competition", "accelerator", "opportunity", "event", "challenge"}},
	{IntentRegistration, []string{"dpiit", "register", "recognition", "startup india"}},
}

// ClassifyIntent returns the first intent whose keyword set matches the query
func ClassifyIntent(query string) Intent {
	queryLower := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(queryLower, kw) {
				return rule.intent
			}
		}
	}
	return IntentFallback
}

// maxContextEntries bounds how many entities are rendered into one context
// block
const maxContextEntries = 5

// BuildContext answers a free-text query with a rendered context block for a
// downstream answer generator. It never fails: an unrecognized query yields
// an empty context with a "no_match" method.
func (g *Graph) BuildContext(query string) Context {
	queryLower := strings.ToLower(query)
	metrics := Metrics{Method: "knowledge_graph"}
	var parts []string
	var sources []string

	switch ClassifyIntent(query) {
	case IntentInvestor:
		parts, sources = g.investorContext(queryLower, &metrics)
	case IntentScheme:
		parts, sources = g.schemeContext(queryLower, &metrics)
	case IntentOpportunity:
		parts, sources = g.opportunityContext(&metrics)
	case IntentRegistration:
		parts, sources = registrationContext(&metrics)
	}

	// Last resort: keyword-pattern query over the whole graph
	if len(parts) == 0 {
		qr := g.ExecuteQuery(query)
		if len(qr.Entities) > 0 {
			parts = append(parts, "Graph search results:")
			for i, e := range qr.Entities {
				if i == maxContextEntries {
					break
				}
				parts = append(parts, fmt.Sprintf("- %s (%s)", e.Name, e.Type))
			}
			sources = append(sources, qr.Sources...)
			metrics.EntitiesFound = len(qr.Entities)
		}
	}

	if len(parts) == 0 {
		metrics.Method = "no_match"
	}
	return Context{
		Text:    strings.Join(parts, "\n"),
		Sources: dedupe(sources),
		Metrics: metrics,
	}
}

func (g *Graph) investorContext(queryLower string, metrics *Metrics) ([]string, []string) {
	var parts, sources []string

	location := g.extractMention(queryLower, EntityCity, EntityState, EntityRegion)
	sector := g.extractMention(queryLower, EntitySector)

	var matches []LocationMatch
	switch {
	case location != "" && sector != "":
		byLocation := make(map[string]LocationMatch)
		for _, m := range g.FindInvestorsInLocation(location) {
			byLocation[m.Investor.ID] = m
		}
		sectorMatches := g.FindInvestorsInSector(sector)
		for _, inv := range sectorMatches {
			if m, ok := byLocation[inv.ID]; ok {
				matches = append(matches, m)
			}
		}
		parts = append(parts, fmt.Sprintf("Query: investors in %s + %s (transitive location inference)", location, sector))
		metrics.RelationshipsTraversed += len(byLocation) + len(sectorMatches)
	case location != "":
		matches = g.FindInvestorsInLocation(location)
		parts = append(parts, fmt.Sprintf("Query: investors operating in %s (includes parent locations)", location))
		metrics.RelationshipsTraversed += len(matches)
	case sector != "":
		for _, inv := range g.FindInvestorsInSector(sector) {
			matches = append(matches, LocationMatch{Investor: inv, MatchedLocation: "N/A"})
		}
		parts = append(parts, fmt.Sprintf("Query: investors in %s sector", sector))
	}

	if len(matches) == 0 {
		return nil, nil
	}
	parts = append(parts, fmt.Sprintf("Found %d matching investors:", len(matches)))
	for i, m := range matches {
		if i == maxContextEntries {
			break
		}
		props, _ := m.Investor.Props.(*InvestorProps)
		if props == nil {
			props = &InvestorProps{}
		}
		parts = append(parts, fmt.Sprintf(
			"%s (%s)\n- Matched via: %s\n- Ticket size: %s\n- Sectors: %s\n- Thesis: %s\n- Contact: %s\n- Source: %s",
			m.Investor.Name, orNA(props.InvestorType), m.MatchedLocation,
			orNA(props.TicketSize), orNA(strings.Join(props.Sectors, ", ")),
			orNA(truncate(props.InvestmentThesis, 150)), orNA(props.ContactEmail),
			orNA(props.SourceDoc),
		))
		if props.SourceDoc != "" {
			sources = append(sources, props.SourceDoc)
		}
	}
	metrics.EntitiesFound = len(matches)
	return parts, sources
}

func (g *Graph) schemeContext(queryLower string, metrics *Metrics) ([]string, []string) {
	var parts, sources []string

	state := g.extractMention(queryLower, EntityState)
	if state == "" {
		// A mentioned city implies its state via hierarchy ascent
		if city := g.extractMention(queryLower, EntityCity); city != "" {
			for _, loc := range g.FindByName(city, true) {
				if loc.Type != EntityCity {
					continue
				}
				for _, ancestor := range g.TraverseLocationHierarchy(loc.ID) {
					if ancestor.Type == EntityState {
						state = ancestor.Name
						parts = append(parts, fmt.Sprintf("Inferred state %q from city %q", state, city))
						break
					}
				}
				break
			}
		}
	}

	var schemes []*Entity
	if state != "" {
		schemes = g.FindSchemesInState(state)
		parts = append(parts, fmt.Sprintf("Query: schemes in %s (+ central government schemes)", state))
	} else {
		schemes = g.FindByType(EntityScheme)
		parts = append(parts, "Query: all available schemes")
	}
	if len(schemes) == 0 {
		return nil, nil
	}

	parts = append(parts, fmt.Sprintf("Found %d matching schemes:", len(schemes)))
	for i, scheme := range schemes {
		if i == maxContextEntries {
			break
		}
		props, _ := scheme.Props.(*SchemeProps)
		if props == nil {
			props = &SchemeProps{}
		}
		parts = append(parts, fmt.Sprintf(
			"%s\n- Type: %s\n- Department: %s\n- Funding: %s\n- Eligibility stages: %s\n- Process: %s\n- Source: %s",
			scheme.Name, orNA(props.SchemeType), orNA(props.Department),
			orNA(props.FundingAmount), orNA(strings.Join(props.EligibilityStages, ", ")),
			orNA(props.ApplicationProcess), orNA(props.SourceDoc),
		))
		if props.SourceDoc != "" {
			sources = append(sources, props.SourceDoc)
		}
	}
	metrics.EntitiesFound = len(schemes)
	return parts, sources
}

func (g *Graph) opportunityContext(metrics *Metrics) ([]string, []string) {
	opportunities := g.FindByType(EntityOpportunity)
	if len(opportunities) == 0 {
		return nil, nil
	}

	parts := []string{
		"Query: active opportunities",
		fmt.Sprintf("Found %d opportunities:", len(opportunities)),
	}
	var sources []string
	for i, opp := range opportunities {
		if i == maxContextEntries {
			break
		}
		props, _ := opp.Props.(*OpportunityProps)
		if props == nil {
			props = &OpportunityProps{}
		}
		parts = append(parts, fmt.Sprintf(
			"%s (%s)\n- Organizer: %s\n- Prize: %s\n- Deadline: %s\n- Benefits: %s\n- Source: %s",
			opp.Name, orNA(props.OpportunityType), orNA(props.Organizer),
			orNA(props.Prize), orNA(props.Deadline),
			orNA(strings.Join(props.Benefits, ", ")), orNA(props.SourceDoc),
		))
		if props.SourceDoc != "" {
			sources = append(sources, props.SourceDoc)
		}
	}
	metrics.EntitiesFound = len(opportunities)
	return parts, sources
}

// dpiitSource cites the policy document backing the canned registration block
const dpiitSource = "Startup India Policy 2024, Page 3"

func registrationContext(metrics *Metrics) ([]string, []string) {
	parts := []string{
		"DPIIT Startup Recognition:",
		"- What: official recognition as a startup by the Government of India",
		"- Benefits: tax exemptions, easier public procurement, self-certification",
		"- Eligibility: Pvt Ltd, LLP or Partnership; under 10 years old; annual turnover below Rs 100 Cr; working towards innovation and scalability",
		"- Process: apply on the Startup India portal (startupindia.gov.in)",
		"- Source: " + dpiitSource,
	}
	metrics.EntitiesFound = 1
	return parts, []string{dpiitSource}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// truncate caps a string at n runes, not bytes, so multi-byte text is never
// cut mid-rune
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
