package mirror

import (
	"context"
	"fmt"

	"sahayak/backend/internal/knowledge"
	"sahayak/backend/internal/seed"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"sahayak/backend/pkg/errors"
	"sahayak/backend/pkg/logger"
	"go.uber.org/zap"
)

// labelPrefix namespaces every node this service creates, so clearing the
// mirror cannot touch unrelated data in a shared Neo4j instance
const labelPrefix = "Validator_"

// Repository is the write-through Neo4j replica of the in-memory knowledge
// graph. It is best-effort: callers must treat every failure as degraded
// operation, never as a core error.
type Repository struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *zap.Logger
}

// NewRepository creates a mirror repository over an existing driver
func NewRepository(driver neo4j.DriverWithContext, database string) *Repository {
	return &Repository{
		driver:   driver,
		database: database,
		logger:   logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

func (r *Repository) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: r.database,
	})
}

// NodeCount returns the number of prefixed nodes currently in the mirror
func (r *Repository) NodeCount(ctx context.Context) (int64, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (n)
		WHERE any(label IN labels(n) WHERE label STARTS WITH $prefix)
		RETURN count(n) AS count
	`, map[string]interface{}{"prefix": labelPrefix})
	if err != nil {
		return 0, fmt.Errorf("failed to count mirror nodes: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch node count: %w", err)
	}
	count, _ := record.Get("count")
	return asInt64(count), nil
}

// Clear removes all prefixed nodes and their relationships. Unprefixed data
// in the same database is left untouched.
func (r *Repository) Clear(ctx context.Context) error {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.Run(ctx, `
		MATCH (n)
		WHERE any(label IN labels(n) WHERE label STARTS WITH $prefix)
		DETACH DELETE n
	`, map[string]interface{}{"prefix": labelPrefix})
	if err != nil {
		return fmt.Errorf("failed to clear mirror data: %w", err)
	}

	r.logger.Info("Cleared existing mirror data from Neo4j")
	return nil
}

// Sync replicates the seed data into Neo4j with the same schema as the
// in-memory graph. If the mirror is already populated the sync is skipped
// unless force is set; a forced sync clears first, then recreates everything.
func (r *Repository) Sync(ctx context.Context, data *seed.Data, force bool) error {
	existing, err := r.NodeCount(ctx)
	if err != nil {
		return errors.NewMirrorSync("precheck", err)
	}
	if existing > 0 && !force {
		r.logger.Info("Neo4j mirror already populated, skipping sync",
			zap.Int64("existing_nodes", existing))
		return nil
	}

	if err := r.Clear(ctx); err != nil {
		return errors.NewMirrorSync("clear", err)
	}

	session := r.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	if err := r.populate(ctx, session, data); err != nil {
		return errors.NewMirrorSync("populate", err)
	}

	nodes, _ := r.NodeCount(ctx)
	r.logger.Info("Neo4j mirror sync complete", zap.Int64("nodes", nodes))
	return nil
}

func (r *Repository) populate(ctx context.Context, session neo4j.SessionWithContext, data *seed.Data) error {
	run := func(cypher string, params map[string]interface{}) error {
		_, err := session.Run(ctx, cypher, params)
		return err
	}

	for _, region := range knowledge.Regions {
		if err := run(`CREATE (r:Validator_Region {name: $name})`,
			map[string]interface{}{"name": region}); err != nil {
			return fmt.Errorf("failed to create region %q: %w", region, err)
		}
	}

	for stateName, info := range data.Locations.States {
		err := run(`
			MATCH (r:Validator_Region {name: $region})
			CREATE (s:Validator_State {
				name: $name,
				startup_hub: $startup_hub,
				key_sectors: $key_sectors
			})
			CREATE (s)-[:LOCATED_IN]->(r)
		`, map[string]interface{}{
			"name":        stateName,
			"region":      info.Region,
			"startup_hub": info.StartupHub,
			"key_sectors": info.KeySectors,
		})
		if err != nil {
			return fmt.Errorf("failed to create state %q: %w", stateName, err)
		}

		for _, city := range info.Cities {
			err := run(`
				MATCH (s:Validator_State {name: $state})
				CREATE (c:Validator_City {name: $name})
				CREATE (c)-[:LOCATED_IN]->(s)
			`, map[string]interface{}{"name": city, "state": stateName})
			if err != nil {
				return fmt.Errorf("failed to create city %q: %w", city, err)
			}
		}
	}

	sectors := make(map[string]bool)
	for _, inv := range data.Investors {
		for _, sector := range inv.Sectors {
			sectors[sector] = true
		}
	}
	for sector := range sectors {
		if err := run(`CREATE (s:Validator_Sector {name: $name})`,
			map[string]interface{}{"name": sector}); err != nil {
			return fmt.Errorf("failed to create sector %q: %w", sector, err)
		}
	}

	for _, stage := range knowledge.Stages {
		if err := run(`CREATE (s:Validator_Stage {name: $name})`,
			map[string]interface{}{"name": stage}); err != nil {
			return fmt.Errorf("failed to create stage %q: %w", stage, err)
		}
	}

	for _, inv := range data.Investors {
		if err := r.syncInvestor(ctx, session, inv); err != nil {
			return err
		}
	}

	for _, scheme := range data.Schemes {
		err := run(`
			CREATE (s:Validator_Scheme {
				id: $id,
				name: $name,
				type: $type,
				department: $department,
				funding_amount: $funding_amount,
				application_process: $application_process,
				link: $link,
				source: $source
			})
		`, map[string]interface{}{
			"id":                  scheme.ID,
			"name":                scheme.Name,
			"type":                scheme.Type,
			"department":          scheme.Department,
			"funding_amount":      scheme.FundingAmount,
			"application_process": scheme.ApplicationProcess,
			"link":                scheme.Link,
			"source":              scheme.Source,
		})
		if err != nil {
			return fmt.Errorf("failed to create scheme %q: %w", scheme.ID, err)
		}
		if scheme.State != "" {
			err := run(`
				MATCH (state:Validator_State {name: $state})
				MATCH (scheme:Validator_Scheme {id: $scheme_id})
				CREATE (state)-[:OFFERS_SCHEME]->(scheme)
			`, map[string]interface{}{"state": scheme.State, "scheme_id": scheme.ID})
			if err != nil {
				return fmt.Errorf("failed to link scheme %q to state: %w", scheme.ID, err)
			}
		}
	}

	for _, opp := range data.Opportunities {
		err := run(`
			CREATE (o:Validator_Opportunity {
				id: $id,
				name: $name,
				type: $type,
				organizer: $organizer,
				prize: $prize,
				deadline: $deadline,
				link: $link,
				source: $source,
				benefits: $benefits
			})
		`, map[string]interface{}{
			"id":        opp.ID,
			"name":      opp.Name,
			"type":      opp.Type,
			"organizer": opp.Organizer,
			"prize":     opp.Prize,
			"deadline":  opp.Deadline,
			"link":      opp.Link,
			"source":    opp.Source,
			"benefits":  opp.Benefits,
		})
		if err != nil {
			return fmt.Errorf("failed to create opportunity %q: %w", opp.ID, err)
		}
	}
	return nil
}

func (r *Repository) syncInvestor(ctx context.Context, session neo4j.SessionWithContext, inv seed.Investor) error {
	_, err := session.Run(ctx, `
		CREATE (i:Validator_Investor {
			id: $id,
			name: $name,
			type: $type,
			ticket_size: $ticket_size,
			investment_thesis: $investment_thesis,
			contact_email: $contact_email,
			source: $source,
			portfolio_companies: $portfolio
		})
	`, map[string]interface{}{
		"id":                inv.ID,
		"name":              inv.Name,
		"type":              inv.Type,
		"ticket_size":       inv.TicketSize,
		"investment_thesis": inv.InvestmentThesis,
		"contact_email":     inv.ContactEmail,
		"source":            inv.Source,
		"portfolio":         inv.PortfolioCompanies,
	})
	if err != nil {
		return fmt.Errorf("failed to create investor %q: %w", inv.ID, err)
	}

	// Edge targets that don't exist simply fail the MATCH and create
	// nothing, mirroring the in-memory graph's drop-on-missing policy
	if inv.Location != "" {
		_, err = session.Run(ctx, `
			MATCH (i:Validator_Investor {id: $inv_id})
			MATCH (c:Validator_City {name: $city})
			CREATE (i)-[:OPERATES_IN]->(c)
		`, map[string]interface{}{"inv_id": inv.ID, "city": inv.Location})
		if err != nil {
			return fmt.Errorf("failed to link investor %q to city: %w", inv.ID, err)
		}
	}
	if inv.State != "" {
		_, err = session.Run(ctx, `
			MATCH (i:Validator_Investor {id: $inv_id})
			MATCH (s:Validator_State {name: $state})
			CREATE (i)-[:OPERATES_IN]->(s)
		`, map[string]interface{}{"inv_id": inv.ID, "state": inv.State})
		if err != nil {
			return fmt.Errorf("failed to link investor %q to state: %w", inv.ID, err)
		}
	}
	for _, sector := range inv.Sectors {
		_, err = session.Run(ctx, `
			MATCH (i:Validator_Investor {id: $inv_id})
			MATCH (s:Validator_Sector {name: $sector})
			CREATE (i)-[:INVESTS_IN]->(s)
		`, map[string]interface{}{"inv_id": inv.ID, "sector": sector})
		if err != nil {
			return fmt.Errorf("failed to link investor %q to sector: %w", inv.ID, err)
		}
	}
	for _, stage := range inv.Stage {
		_, err = session.Run(ctx, `
			MATCH (i:Validator_Investor {id: $inv_id})
			MATCH (s:Validator_Stage {name: $stage})
			CREATE (i)-[:TARGETS_STAGE]->(s)
		`, map[string]interface{}{"inv_id": inv.ID, "stage": stage})
		if err != nil {
			return fmt.Errorf("failed to link investor %q to stage: %w", inv.ID, err)
		}
	}
	return nil
}
