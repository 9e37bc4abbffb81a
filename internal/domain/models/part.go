// internal/domain/models/part.go
package models

// Part is one row of the parts list. The list is placeholder content until
// the backend exposes a parts endpoint.
type Part struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ElevatorType string `json:"elevatorType"`
	Stock        int    `json:"stock"`
	Status       string `json:"status"`
}

// Part status keys.
const (
	PartStatusAvailable = "available"
	PartStatusLowStock  = "low_stock"
	PartStatusOrdered   = "ordered"
)
