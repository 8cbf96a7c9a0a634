package entities

// Plan tiers driving the auto-generated task checklist.
const (
	PlanStarted = "Started"
	PlanGrowth  = "Growth"
	PlanScale   = "Scale"
)

// Client lifecycle states.
const (
	StatusActivo     = "Activo"
	StatusEnPausa    = "En Pausa"
	StatusFinalizado = "Finalizado"
)

// Metrics are monthly performance counters shown on the client portal.
type Metrics struct {
	Reach  int `json:"reach"`
	Leads  int `json:"leads"`
	Clicks int `json:"clicks"`
	Spent  int `json:"spent"`
}

type Client struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	ContactName  string   `json:"contactName"`
	Email        string   `json:"email"`
	PlanBase     string   `json:"planBase"`
	Status       string   `json:"status"`
	StartDate    string   `json:"startDate"`
	RenewalDate  string   `json:"renewalDate"`
	DriveFolder  string   `json:"driveFolder"`
	AccessCode   string   `json:"accessCode"`
	Platforms    []string `json:"platforms"`
	Metrics      Metrics  `json:"metrics"`
	BillingCycle string   `json:"billingCycle"` // days, stored as string
	Password     string   `json:"-"`
}
