package knowledge

import (
	"sort"

	"sahayak/backend/internal/seed"
	"sahayak/backend/pkg/logger"
	"go.uber.org/zap"
)

// Regions is the fixed set of region entities. States referencing a region
// outside this set get no LOCATED_IN edge.
var Regions = []string{"South India", "North India", "West India", "East India", "Central India"}

// Stages is the fixed set of startup stage entities
var Stages = []string{"Pre-Seed", "Seed", "Series A", "Series B", "Growth", "Idea", "MVP", "Revenue"}

// Build constructs a knowledge graph from seed data. It always builds into a
// fresh Graph, so building twice from the same input yields equal graphs.
// Relationships whose endpoints do not resolve are dropped, not errored.
func Build(data *seed.Data) *Graph {
	g := newGraph()

	for _, region := range Regions {
		g.addEntity(&Entity{ID: regionID(region), Type: EntityRegion, Name: region})
	}

	// State names are sorted so entity insertion order, and everything
	// derived from it, is identical across builds
	stateNames := make([]string, 0, len(data.Locations.States))
	for name := range data.Locations.States {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for _, stateName := range stateNames {
		info := data.Locations.States[stateName]
		sid := stateID(stateName)
		g.addEntity(&Entity{
			ID:   sid,
			Type: EntityState,
			Name: stateName,
			Props: &StateProps{
				StartupHub: info.StartupHub,
				KeySectors: info.KeySectors,
			},
		})
		if info.Region != "" {
			g.addRelationship(sid, regionID(info.Region), RelLocatedIn)
		}

		for _, city := range info.Cities {
			cid := cityID(city)
			g.addEntity(&Entity{
				ID:    cid,
				Type:  EntityCity,
				Name:  city,
				Props: &CityProps{State: stateName},
			})
			g.addRelationship(cid, sid, RelLocatedIn)
		}
	}

	// Sectors are the union of all sector names across investor records
	seen := make(map[string]bool)
	for _, inv := range data.Investors {
		for _, sector := range inv.Sectors {
			id := sectorID(sector)
			if seen[id] {
				continue
			}
			seen[id] = true
			g.addEntity(&Entity{ID: id, Type: EntitySector, Name: sector})
		}
	}

	for _, stage := range Stages {
		g.addEntity(&Entity{ID: stageID(stage), Type: EntityStage, Name: stage})
	}

	for _, inv := range data.Investors {
		iid := investorID(inv.ID)
		g.addEntity(&Entity{
			ID:   iid,
			Type: EntityInvestor,
			Name: inv.Name,
			Props: &InvestorProps{
				InvestorType:       inv.Type,
				TicketSize:         inv.TicketSize,
				InvestmentThesis:   inv.InvestmentThesis,
				ContactEmail:       inv.ContactEmail,
				Sectors:            inv.Sectors,
				PortfolioCompanies: inv.PortfolioCompanies,
				SourceDoc:          inv.Source,
			},
		})
		if inv.Location != "" {
			g.addRelationship(iid, cityID(inv.Location), RelOperatesIn)
		}
		if inv.State != "" {
			g.addRelationship(iid, stateID(inv.State), RelOperatesIn)
		}
		for _, sector := range inv.Sectors {
			g.addRelationship(iid, sectorID(sector), RelInvestsIn)
		}
		for _, stage := range inv.Stage {
			g.addRelationship(iid, stageID(stage), RelTargetsStage)
		}
	}

	for _, scheme := range data.Schemes {
		scid := schemeID(scheme.ID)
		g.addEntity(&Entity{
			ID:   scid,
			Type: EntityScheme,
			Name: scheme.Name,
			Props: &SchemeProps{
				SchemeType:         scheme.Type,
				Department:         scheme.Department,
				FundingAmount:      scheme.FundingAmount,
				EligibilityStages:  scheme.Eligibility.Stage,
				EligibilitySectors: scheme.Eligibility.Sectors,
				ApplicationProcess: scheme.ApplicationProcess,
				Link:               scheme.Link,
				SourceDoc:          scheme.Source,
			},
		})
		// Central schemes carry no state edge; they are found by a type-tag
		// scan at query time
		if scheme.State != "" {
			g.addRelationship(stateID(scheme.State), scid, RelOffersScheme)
		}
	}

	for _, opp := range data.Opportunities {
		g.addEntity(&Entity{
			ID:   opportunityID(opp.ID),
			Type: EntityOpportunity,
			Name: opp.Name,
			Props: &OpportunityProps{
				OpportunityType: opp.Type,
				Organizer:       opp.Organizer,
				Prize:           opp.Prize,
				Deadline:        opp.Deadline,
				Benefits:        opp.Benefits,
				Link:            opp.Link,
				SourceDoc:       opp.Source,
			},
		})
	}

	stats := g.Stats()
	logger.Get().Info("Knowledge graph built",
		zap.Int("entities", stats.TotalEntities),
		zap.Int("relationships", stats.TotalRelationships),
		zap.Int("dropped_edges", g.droppedEdges),
	)
	return g
}
