// internal/domain/models/dashboard.go
package models

import "time"

// DashboardStats are the KPI tiles at the top of the dashboard.
type DashboardStats struct {
	TotalParts      int `json:"totalParts"`
	PartsCategories int `json:"partsCategories"`
	ElevatorTypes   int `json:"elevatorTypes"`
	LowStockParts   int `json:"lowStockParts"`
}

// TrendPoint is one point of the monthly trend chart.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PieSlice is one slice of the category distribution chart.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	User   string    `json:"user"`
	At     time.Time `json:"at"`
	Status string    `json:"status"`
}

// DashboardData groups the four independently fetched dashboard slices.
type DashboardData struct {
	Stats        DashboardStats `json:"stats"`
	Trend        []TrendPoint   `json:"trend"`
	Distribution []PieSlice     `json:"distribution"`
	Activities   []Activity     `json:"activities"`
}

// EmptyDashboard returns zero stats and empty (non-nil) series.
func EmptyDashboard() DashboardData {
	return DashboardData{
		Trend:        []TrendPoint{},
		Distribution: []PieSlice{},
		Activities:   []Activity{},
	}
}
