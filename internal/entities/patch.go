package entities

import "encoding/json"

// Patch types back the PATCH endpoints: nil means "leave untouched", which
// the status-driven progress rule depends on to tell absent from zero.

type TaskPatch struct {
	Title          *string          `json:"title"`
	Category       *string          `json:"category"`
	Status         *string          `json:"status"`
	Progress       *int             `json:"progress"`
	Responsible    *string          `json:"responsible"`
	Deadline       *string          `json:"deadline"`
	Description    *string          `json:"description"`
	Comments       *json.RawMessage `json:"comments"`
	Attachments    *json.RawMessage `json:"attachments"`
	ClientFeedback *string          `json:"clientFeedback"`
}

type ClientPatch struct {
	Company      *string   `json:"company"`
	ContactName  *string   `json:"contactName"`
	Email        *string   `json:"email"`
	PlanBase     *string   `json:"planBase"`
	Status       *string   `json:"status"`
	StartDate    *string   `json:"startDate"`
	RenewalDate  *string   `json:"renewalDate"`
	DriveFolder  *string   `json:"driveFolder"`
	AccessCode   *string   `json:"accessCode"`
	Platforms    *[]string `json:"platforms"`
	Metrics      *Metrics  `json:"metrics"`
	BillingCycle *string   `json:"billingCycle"`
	Password     *string   `json:"password"`
}

type UserPatch struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Email        *string `json:"email"`
	PasswordHash *string `json:"passwordHash"`
	Status       *string `json:"status"`
}

type ServicePatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Features    *[]string `json:"features"`
	Status      *string   `json:"status"`
}
