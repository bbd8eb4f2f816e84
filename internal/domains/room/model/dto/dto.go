package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type RoomResponse struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Price     int64    `json:"price"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	Available bool     `json:"available"`
	Image     string   `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Type = model.Type
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Amenities = []string(model.Amenities)
	r.Available = model.Available
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
