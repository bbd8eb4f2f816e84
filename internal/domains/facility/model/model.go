package model

import (
	"hotel/shared/model"
	"slices"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldCapacity      = "capacity"
	FieldImage         = "image"
	FieldTimeSlots     = "time_slots"
	FieldAvailableDays = "available_days"
)

// Facility is bookable per slot. AvailableDays holds English weekday names, e.g. "Tuesday".
type Facility struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	Price         int64          `db:"price"`
	Capacity      int            `db:"capacity"`
	Image         string         `db:"image"`
	TimeSlots     pq.StringArray `db:"time_slots"`
	AvailableDays pq.StringArray `db:"available_days"`
	model.Metadata
}

func (f Facility) OpenOn(day time.Weekday) bool {
	return slices.Contains(f.AvailableDays, day.String())
}

func (f Facility) HasSlot(slot string) bool {
	return slices.Contains(f.TimeSlots, slot)
}

// FreeSlots returns the configured slots not present in held, keeping configuration order.
func (f Facility) FreeSlots(held []string) []string {
	taken := make(map[string]struct{}, len(held))
	for _, slot := range held {
		taken[slot] = struct{}{}
	}

	free := make([]string, 0, len(f.TimeSlots))

	for _, slot := range f.TimeSlots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free
}
