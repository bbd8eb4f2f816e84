package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "food_items"
	EntityName = "food"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldImage       = "image"
	FieldAvailable   = "available"
	FieldIngredients = "ingredients"
	FieldSpicy       = "spicy"
	FieldVegetarian  = "vegetarian"
)

type Food struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Price       int64          `db:"price"`
	Category    string         `db:"category"`
	Image       string         `db:"image"`
	Available   bool           `db:"available"`
	Ingredients pq.StringArray `db:"ingredients"`
	Spicy       bool           `db:"spicy"`
	Vegetarian  bool           `db:"vegetarian"`
	model.Metadata
}

// Orderable reports whether the item exists and can currently be ordered.
func (f Food) Orderable() bool {
	return f.ID != "" && f.Available
}
