package dto

import (
	"hotel/internal/domains/food/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type FoodResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Available   bool     `json:"available"`
	Ingredients []string `json:"ingredients"`
	Spicy       bool     `json:"spicy"`
	Vegetarian  bool     `json:"vegetarian"`
	gDto.Metadata
}

func (r *FoodResponse) FromModel(model model.Food) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.Image = model.Image
	r.Available = model.Available
	r.Ingredients = []string(model.Ingredients)
	r.Spicy = model.Spicy
	r.Vegetarian = model.Vegetarian
	r.Metadata.FromModel(model.Metadata)
}

type GetFoodsResponse struct {
	Foods     []FoodResponse `json:"foods"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetFoodsResponse) FromModels(models []model.Food, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Foods = make([]FoodResponse, len(models))
	for i, mod := range models {
		r.Foods[i].FromModel(mod)
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
