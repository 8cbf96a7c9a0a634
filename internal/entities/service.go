package entities

// ServicePackage is catalog data only; it plays no part in task generation.
type ServicePackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
}
