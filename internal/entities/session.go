package entities

// Session actor kinds.
const (
	SessionAdmin  = "admin"
	SessionUser   = "user"
	SessionClient = "client"
)

// Session is the resolved identity behind the session cookie.
type Session struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Type string `json:"type"`
}

// IsAdmin reports full-visibility access: the hardcoded admin identity or a
// team member holding the Administrador role.
func (s Session) IsAdmin() bool {
	return s.Role == "Administrador" || s.ID == "admin"
}
