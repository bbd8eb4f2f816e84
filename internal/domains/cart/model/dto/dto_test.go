package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/cart/pricing"
	"hotel/shared/failure"
)

func TestCartItemRequest_ToLine(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CartItemRequest
		want     model.Line
		wantCode int
	}{
		{
			name: "room",
			req: dto.CartItemRequest{ID: "deluxe", Type: "room", Quantity: 1, Details: dto.CartItemDetails{
				CheckIn: "2024-01-01", CheckOut: "2024-01-03", Guests: 2,
			}},
			want: model.RoomLine{
				RoomID:   "deluxe",
				CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
				Guests:   2,
			},
		},
		{
			name: "food defaults quantity to one",
			req:  dto.CartItemRequest{ID: "curry", Type: "food"},
			want: model.FoodLine{FoodID: "curry", Quantity: 1},
		},
		{
			name: "facility",
			req:  dto.CartItemRequest{ID: "gym", Type: "facility", Details: dto.CartItemDetails{Date: "2024-02-01", TimeSlot: "06:00-07:00"}},
			want: model.FacilityLine{FacilityID: "gym", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), TimeSlot: "06:00-07:00"},
		},
		{
			name:     "unknown type",
			req:      dto.CartItemRequest{ID: "x", Type: "spaceship"},
			wantCode: 400,
		},
		{
			name:     "room with bad dates",
			req:      dto.CartItemRequest{ID: "deluxe", Type: "room", Details: dto.CartItemDetails{CheckIn: "soon", CheckOut: "later"}},
			wantCode: 400,
		},
		{
			name:     "facility without slot",
			req:      dto.CartItemRequest{ID: "gym", Type: "facility", Details: dto.CartItemDetails{Date: "2024-02-01"}},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := tt.req.ToLine()

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestQuoteResponse_FromModel(t *testing.T) {
	var quote model.Quote
	quote.Add(model.FoodLine{FoodID: "curry", Quantity: 3}, 300)
	quote.Skip(model.FoodLine{FoodID: "gone", Quantity: 1}, "food item unavailable")

	var res dto.QuoteResponse
	res.FromModel(quote)

	assert.Equal(t, int64(300), res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "food", res.Items[0].Type)
	assert.Equal(t, 3, res.Items[0].Quantity)
	assert.True(t, res.Items[1].Skipped)
}

func TestCartRequest_LinesReportsItemIndex(t *testing.T) {
	req := dto.CartRequest{Items: []dto.CartItemRequest{
		{ID: "curry", Type: "food", Quantity: 2},
		{ID: "x", Type: "unknown"},
	}}

	_, err := req.Lines()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestCartItemRequest_ToLine_SameDayStay(t *testing.T) {
	req := dto.CartItemRequest{ID: "deluxe", Type: "room", Details: dto.CartItemDetails{
		CheckIn: "2026-03-03T08:00:00Z", CheckOut: "2026-03-03T20:00:00Z", Guests: 1,
	}}

	line, err := req.ToLine()
	require.NoError(t, err)

	room := line.(model.RoomLine)
	assert.Equal(t, room.CheckIn, room.CheckOut)

	_, err = pricing.Room(1000, room.CheckIn, room.CheckOut)
	assert.ErrorIs(t, err, failure.ErrInvalidRange)
}

func TestCartItemRequest_ToLine_TimestampsPriceByCalendarDate(t *testing.T) {
	req := dto.CartItemRequest{ID: "deluxe", Type: "room", Details: dto.CartItemDetails{
		CheckIn: "2026-03-03T20:00:00Z", CheckOut: "2026-03-05T08:00:00Z", Guests: 1,
	}}

	line, err := req.ToLine()
	require.NoError(t, err)

	room := line.(model.RoomLine)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), room.CheckIn)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), room.CheckOut)

	price, err := pricing.Room(1000, room.CheckIn, room.CheckOut)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), price)
}
