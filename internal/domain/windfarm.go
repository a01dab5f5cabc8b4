package domain

import "time"

// Conventional wind farm lifecycle statuses. Stored as free text,
// these are the values the statistics endpoint counts.
const (
	FarmStatusPlanned           = "planned"
	FarmStatusUnderConstruction = "under_construction"
	FarmStatusOperational       = "operational"
)

type WindFarm struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CapacityMW  *float64  `json:"capacity_mw"`
	Status      string    `json:"status"`
	Operator    *string   `json:"operator"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FarmStats aggregates counts across both tables for the /stats endpoint.
type FarmStats struct {
	TotalWindFarms    int64   `json:"total_wind_farms"`
	OperationalFarms  int64   `json:"operational_farms"`
	PlannedFarms      int64   `json:"planned_farms"`
	TotalCapacityMW   float64 `json:"total_capacity_mw"`
	TotalNewsArticles int64   `json:"total_news_articles"`
}
