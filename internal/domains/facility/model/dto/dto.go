package dto

import (
	"hotel/internal/domains/facility/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type FacilityResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Capacity      int      `json:"capacity"`
	Image         string   `json:"image"`
	TimeSlots     []string `json:"time_slots"`
	AvailableDays []string `json:"available_days"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Image = model.Image
	r.TimeSlots = []string(model.TimeSlots)
	r.AvailableDays = []string(model.AvailableDays)
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}

type AvailableSlotsResponse struct {
	FacilityID     string   `json:"facility_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}
