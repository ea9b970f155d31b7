package knowledge

// EntityType identifies the kind of node in the knowledge graph
type EntityType string

const (
	EntityInvestor    EntityType = "investor"
	EntityScheme      EntityType = "scheme"
	EntityOpportunity EntityType = "opportunity"
	EntityState       EntityType = "state"
	EntityCity        EntityType = "city"
	EntityRegion      EntityType = "region"
	EntitySector      EntityType = "sector"
	EntityStage       EntityType = "stage"
)

// RelationType identifies the kind of directed edge between two entities
type RelationType string

const (
	RelLocatedIn    RelationType = "LOCATED_IN"    // City -> State, State -> Region
	RelInvestsIn    RelationType = "INVESTS_IN"    // Investor -> Sector
	RelOperatesIn   RelationType = "OPERATES_IN"   // Investor -> State/City
	RelOffersScheme RelationType = "OFFERS_SCHEME" // State -> Scheme
	RelTargetsStage RelationType = "TARGETS_STAGE" // Investor -> Stage
	RelAppliesTo    RelationType = "APPLIES_TO"    // Scheme -> Sector
)

// CentralGovernmentType is the scheme type tag marking a scheme as available
// in every state regardless of location edges
const CentralGovernmentType = "Central Government"

// Props carries the type-specific payload of an entity. Source returns the
// citation document for the record, or "" for classifier entities.
type Props interface {
	Source() string
}

// Entity represents a node in the knowledge graph
type Entity struct {
	ID    string     `json:"id"`
	Type  EntityType `json:"type"`
	Name  string     `json:"name"`
	Props Props      `json:"properties,omitempty"`
}

// Relationship represents a directed edge in the knowledge graph
type Relationship struct {
	SourceID string       `json:"source_id"`
	TargetID string       `json:"target_id"`
	Type     RelationType `json:"type"`
}

// InvestorProps holds investor-specific entity fields
type InvestorProps struct {
	InvestorType       string   `json:"type"`
	TicketSize         string   `json:"ticket_size"`
	InvestmentThesis   string   `json:"investment_thesis"`
	ContactEmail       string   `json:"contact_email"`
	Sectors            []string `json:"sectors"`
	PortfolioCompanies []string `json:"portfolio_companies"`
	SourceDoc          string   `json:"source"`
}

func (p *InvestorProps) Source() string { return p.SourceDoc }

// SchemeProps holds scheme-specific entity fields
type SchemeProps struct {
	SchemeType         string   `json:"type"`
	Department         string   `json:"department"`
	FundingAmount      string   `json:"funding_amount"`
	EligibilityStages  []string `json:"eligibility_stages"`
	EligibilitySectors []string `json:"eligibility_sectors"`
	ApplicationProcess string   `json:"application_process"`
	Link               string   `json:"link"`
	SourceDoc          string   `json:"source"`
}

func (p *SchemeProps) Source() string { return p.SourceDoc }

// IsCentral reports whether the scheme is a central government scheme,
// available in every state
func (p *SchemeProps) IsCentral() bool { return p.SchemeType == CentralGovernmentType }

// OpportunityProps holds opportunity-specific entity fields
type OpportunityProps struct {
	OpportunityType string   `json:"type"`
	Organizer       string   `json:"organizer"`
	Prize           string   `json:"prize"`
	Deadline        string   `json:"deadline"`
	Benefits        []string `json:"benefits"`
	Link            string   `json:"link"`
	SourceDoc       string   `json:"source"`
}

func (p *OpportunityProps) Source() string { return p.SourceDoc }

// StateProps holds state-specific entity fields
type StateProps struct {
	StartupHub string   `json:"startup_hub"`
	KeySectors []string `json:"key_sectors"`
}

func (p *StateProps) Source() string { return "" }

// CityProps holds city-specific entity fields
type CityProps struct {
	State string `json:"state"` // Parent state name
}

func (p *CityProps) Source() string { return "" }
