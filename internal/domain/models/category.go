// internal/domain/models/category.go
package models

// CategoryStats is the combined category summary shown on the category
// management page. It is derived on every fetch and never stored.
type CategoryStats struct {
	PartsCategories int `json:"partsCategories"`
	ElevatorTypes   int `json:"elevatorTypes"`
	ActiveItems     int `json:"activeItems"`
	TotalManagement int `json:"totalManagement"`
}

// NewCategory is the body sent to the backend when a parts category or an
// elevator type is created from the parts page.
type NewCategory struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
