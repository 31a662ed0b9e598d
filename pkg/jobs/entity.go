package jobs

// Job is a listing as returned to clients.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	CompanyLogo      *string  `json:"companyLogo"`
	Location         string   `json:"location"`
	IsRemote         bool     `json:"isRemote"`
	Type             string   `json:"type"`
	Salary           string   `json:"salary"`
	Posted           string   `json:"posted"`
	Description      string   `json:"description"`
	Highlights       []string `json:"highlights"`
	Responsibilities []string `json:"responsibilities"`
	ApplyLink        string   `json:"applyLink"`
	Skills           []string `json:"skills"`
	Publisher        string   `json:"publisher"`
	MatchScore       int      `json:"matchScore,omitempty"`
}

// Query holds search parameters. EmploymentType is one of FULLTIME, PARTTIME,
// CONTRACTOR or INTERN; empty means any.
type Query struct {
	Query          string
	Location       string
	Page           int
	Remote         bool
	EmploymentType string
}

type SuggestRequest struct {
	Skills   []string `json:"skills"`
	JobTitle string   `json:"jobTitle"`
}

type SearchResult struct {
	Jobs      []Job  `json:"jobs"`
	TotalJobs int    `json:"totalJobs"`
	IsDemo    bool   `json:"isDemo"`
	Message   string `json:"message,omitempty"`
}

const (
	defaultQuery = "software developer"

	msgNoAPIKey    = "Using demo data. Configure RAPIDAPI_KEY for live job listings."
	msgUnavailable = "API temporarily unavailable. Showing demo jobs."
)
