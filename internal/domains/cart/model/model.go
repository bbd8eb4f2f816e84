package model

import (
	"hotel/shared/constant"
	"time"
)

// Line is one cart entry. The concrete type is fixed when the request is parsed.
type Line interface {
	Kind() string
	CatalogID() string
	isLine()
}

type RoomLine struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

func (RoomLine) Kind() string        { return constant.KindRoom }
func (l RoomLine) CatalogID() string { return l.RoomID }
func (RoomLine) isLine()             {}

type FoodLine struct {
	FoodID   string
	Quantity int
}

func (FoodLine) Kind() string        { return constant.KindFood }
func (l FoodLine) CatalogID() string { return l.FoodID }
func (FoodLine) isLine()             {}

type FacilityLine struct {
	FacilityID string
	Date       time.Time
	TimeSlot   string
}

func (FacilityLine) Kind() string        { return constant.KindFacility }
func (l FacilityLine) CatalogID() string { return l.FacilityID }
func (FacilityLine) isLine()             {}

// PricedLine is a line with the price it will be charged at. Skipped lines carry no price
// and are excluded from the total.
type PricedLine struct {
	Line    Line
	Price   int64
	Skipped bool
	Reason  string
}

type Quote struct {
	Lines []PricedLine
	Total int64
}

// Add appends a priced line and accumulates the total.
func (q *Quote) Add(line Line, price int64) {
	q.Lines = append(q.Lines, PricedLine{Line: line, Price: price})
	q.Total += price
}

// Skip appends a line that will not be charged.
func (q *Quote) Skip(line Line, reason string) {
	q.Lines = append(q.Lines, PricedLine{Line: line, Skipped: true, Reason: reason})
}

// IDs groups the catalog ids referenced by lines by kind.
func IDs(lines []Line) map[string][]string {
	type ref struct{ kind, id string }

	ids := make(map[string][]string, 3)
	seen := make(map[ref]struct{}, len(lines))

	for _, line := range lines {
		key := ref{line.Kind(), line.CatalogID()}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		ids[line.Kind()] = append(ids[line.Kind()], line.CatalogID())
	}

	return ids
}
