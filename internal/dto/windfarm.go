package dto

import (
	"github.com/windnewsmapper/wind-news-mapper/internal/apperr"
	"github.com/windnewsmapper/wind-news-mapper/internal/domain"
	"github.com/windnewsmapper/wind-news-mapper/pkg/pagination"
)

// CreateWindFarmRequest is the POST /wind-farms body. Coordinates are
// pointers so a missing field is distinguishable from zero.
type CreateWindFarmRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CapacityMW  *float64 `json:"capacity_mw"`
	Status      string   `json:"status"`
	Operator    *string  `json:"operator"`
	Description *string  `json:"description"`
}

func (r *CreateWindFarmRequest) Validate() error {
	if r.Name == "" {
		return apperr.NewValidation("name is required")
	}
	if r.Location == "" {
		return apperr.NewValidation("location is required")
	}
	if r.Latitude == nil {
		return apperr.NewValidation("latitude is required")
	}
	if r.Longitude == nil {
		return apperr.NewValidation("longitude is required")
	}
	return nil
}

func (r *CreateWindFarmRequest) ToDomain() domain.WindFarm {
	status := r.Status
	if status == "" {
		status = domain.FarmStatusPlanned
	}

	return domain.WindFarm{
		Name:        r.Name,
		Location:    r.Location,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		CapacityMW:  r.CapacityMW,
		Status:      status,
		Operator:    r.Operator,
		Description: r.Description,
	}
}

type ListWindFarmsParams struct {
	pagination.LimitOffset
	Status string `query:"status"`
}
