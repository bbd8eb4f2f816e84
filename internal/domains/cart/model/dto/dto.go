package dto

import (
	"fmt"
	"hotel/internal/domains/cart/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"time"
)

// CartItemDetails carries the kind-specific fields of a cart item.
type CartItemDetails struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

type CartItemRequest struct {
	ID       string          `json:"id"       validate:"required"`
	Type     string          `json:"type"     validate:"required"`
	Quantity int             `json:"quantity" validate:"omitempty,min=1,max=50"`
	Details  CartItemDetails `json:"details"`
}

// ToLine decides the line variant from the item type.
func (c *CartItemRequest) ToLine() (model.Line, error) {
	switch c.Type {
	case constant.KindRoom:
		checkIn, err := shared.ParseDate(c.Details.CheckIn)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		checkOut, err := shared.ParseDate(c.Details.CheckOut)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		return model.RoomLine{RoomID: c.ID, CheckIn: checkIn, CheckOut: checkOut, Guests: max(c.Details.Guests, 1)}, nil
	case constant.KindFood:
		return model.FoodLine{FoodID: c.ID, Quantity: max(c.Quantity, 1)}, nil
	case constant.KindFacility:
		date, err := time.Parse(constant.DateOnlyFormat, c.Details.Date)
		if err != nil {
			return nil, failure.BadRequest(fmt.Errorf("invalid facility date %q: %w", c.Details.Date, err)) // nolint:wrapcheck
		}

		if c.Details.TimeSlot == constant.Empty {
			return nil, failure.BadRequestFromString("facility item requires a time slot") // nolint:wrapcheck
		}

		return model.FacilityLine{FacilityID: c.ID, Date: date, TimeSlot: c.Details.TimeSlot}, nil
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown cart item type %q", c.Type)) // nolint:wrapcheck
	}
}

type CartRequest struct {
	Items []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Lines parses every item, failing on the first malformed one.
func (c *CartRequest) Lines() ([]model.Line, error) {
	lines := make([]model.Line, len(c.Items))

	for i := range c.Items {
		line, err := c.Items[i].ToLine()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		lines[i] = line
	}

	return lines, nil
}

type QuoteLineResponse struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Quantity int    `json:"quantity,omitempty"`
	Price    int64  `json:"price"`
	Skipped  bool   `json:"skipped,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type QuoteResponse struct {
	Items []QuoteLineResponse `json:"items"`
	Total int64               `json:"total"`
}

func (r *QuoteResponse) FromModel(quote model.Quote) {
	r.Total = quote.Total

	r.Items = make([]QuoteLineResponse, len(quote.Lines))
	for i, priced := range quote.Lines {
		item := QuoteLineResponse{
			Type:    priced.Line.Kind(),
			ID:      priced.Line.CatalogID(),
			Price:   priced.Price,
			Skipped: priced.Skipped,
			Reason:  priced.Reason,
		}

		if food, ok := priced.Line.(model.FoodLine); ok {
			item.Quantity = food.Quantity
		}

		r.Items[i] = item
	}
}
