package seed

// Data is the decoded seed document. Investors, schemes, opportunities and
// locations are required; the remaining sections are optional extras used by
// the dashboard and route endpoints.
type Data struct {
	Investors     []Investor             `json:"investors"`
	Schemes       []Scheme               `json:"schemes"`
	Opportunities []Opportunity          `json:"opportunities"`
	Locations     Locations              `json:"locations"`
	FundingRoutes map[string][]RouteStep `json:"funding_routes"`
	UserProfile   UserProfile            `json:"user_profile"`
}

// Locations groups all geographic seed records
type Locations struct {
	States map[string]StateInfo `json:"states"`
}

// StateInfo describes a single state and the cities under it
type StateInfo struct {
	Region     string   `json:"region"`
	StartupHub string   `json:"startup_hub"`
	KeySectors []string `json:"key_sectors"`
	Cities     []string `json:"cities"`
}

// Investor is a raw investor seed record
type Investor struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Location           string   `json:"location"` // City name
	State              string   `json:"state"`
	Sectors            []string `json:"sectors"`
	Stage              []string `json:"stage"`
	TicketSize         string   `json:"ticket_size"`
	InvestmentThesis   string   `json:"investment_thesis"`
	ContactEmail       string   `json:"contact_email"`
	PortfolioCompanies []string `json:"portfolio_companies"`
	Source             string   `json:"source"`
}

// Scheme is a raw government scheme seed record. State is empty for central
// government schemes.
type Scheme struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Type               string      `json:"type"`
	State              string      `json:"state"`
	Department         string      `json:"department"`
	FundingAmount      string      `json:"funding_amount"`
	Eligibility        Eligibility `json:"eligibility"`
	ApplicationProcess string      `json:"application_process"`
	Link               string      `json:"link"`
	Source             string      `json:"source"`
}

// Opportunity is a raw hackathon/grant/accelerator seed record
type Opportunity struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Organizer   string      `json:"organizer"`
	Prize       string      `json:"prize"`
	Deadline    string      `json:"deadline"`
	Eligibility Eligibility `json:"eligibility"`
	Benefits    []string    `json:"benefits"`
	Link        string      `json:"link"`
	Source      string      `json:"source"`
}

// Eligibility is the shared eligibility sub-structure of schemes and
// opportunities
type Eligibility struct {
	Stage       []string `json:"stage"`
	Sectors     []string `json:"sectors"`
	Description string   `json:"description"`
}

// RouteStep is a single step in a stage-specific funding route
type RouteStep struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	FundingRange string `json:"funding_range"`
}

// UserProfile is the demo founder profile used by the dashboard
type UserProfile struct {
	Name            string `json:"name"`
	StartupName     string `json:"startup_name"`
	Sector          string `json:"sector"`
	Stage           string `json:"stage"`
	Location        string `json:"location"`
	State           string `json:"state"`
	TeamSize        int    `json:"team_size"`
	MonthlyRevenue  int    `json:"monthly_revenue"`
	DPIITRegistered bool   `json:"dpiit_registered"`
}
