package entities

// User is a team member with dashboard access. Tasks reference users by
// name, not by id.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Status       string `json:"status"`
}
