package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldType      = "type"
	FieldPrice     = "price"
	FieldCapacity  = "capacity"
	FieldAmenities = "amenities"
	FieldAvailable = "available"
	FieldImage     = "image"
)

// Room is a bookable room type. Price is per night.
type Room struct {
	ID        string         `db:"id"`
	Type      string         `db:"type"`
	Price     int64          `db:"price"`
	Capacity  int            `db:"capacity"`
	Amenities pq.StringArray `db:"amenities"`
	Available bool           `db:"available"`
	Image     string         `db:"image"`
	model.Metadata
}
