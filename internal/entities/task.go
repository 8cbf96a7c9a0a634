package entities

import "encoding/json"

// Task statuses, in their usual order of progression.
const (
	TaskPendiente  = "Pendiente"
	TaskEnProceso  = "En proceso"
	TaskEnRevision = "En revisión"
	TaskAprobado   = "Aprobado"
	TaskTerminado  = "Terminado"
)

// ResponsibleUnassigned is the sentinel used when nobody has claimed a task.
const ResponsibleUnassigned = "Por asignar"

// Task belongs to exactly one client. Responsible is a denormalized free-text
// field: either a team member's name or a role label nobody claims yet.
type Task struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	Progress       int             `json:"progress"`
	ClientID       string          `json:"clientId"`
	Responsible    string          `json:"responsible"`
	Deadline       string          `json:"deadline"`
	Description    string          `json:"description"`
	Comments       json.RawMessage `json:"comments,omitempty"`
	Attachments    json.RawMessage `json:"attachments,omitempty"`
	ClientFeedback string          `json:"clientFeedback"`
}
