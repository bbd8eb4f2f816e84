package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/cart/pricing"
	"hotel/shared/failure"
)

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  bool
	}{
		{name: "two whole days", checkIn: date(2024, 1, 1, 0), checkOut: date(2024, 1, 3, 0), want: 2},
		{name: "partial day rounds up", checkIn: date(2024, 1, 1, 14), checkOut: date(2024, 1, 2, 18), want: 2},
		{name: "single hour is one night", checkIn: date(2024, 1, 1, 10), checkOut: date(2024, 1, 1, 11), want: 1},
		{name: "across month end", checkIn: date(2024, 1, 30, 0), checkOut: date(2024, 2, 2, 0), want: 3},
		{name: "same instant", checkIn: date(2024, 1, 1, 0), checkOut: date(2024, 1, 1, 0), wantErr: true},
		{name: "check-out before check-in", checkIn: date(2024, 1, 3, 0), checkOut: date(2024, 1, 1, 0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Nights(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrInvalidRange)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoom(t *testing.T) {
	price, err := pricing.Room(1000, date(2024, 1, 1, 0), date(2024, 1, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2000), price)

	_, err = pricing.Room(1000, date(2024, 1, 3, 0), date(2024, 1, 3, 0))
	assert.ErrorIs(t, err, failure.ErrInvalidRange)
}

func TestFood(t *testing.T) {
	assert.Equal(t, int64(300), pricing.Food(100, 3))
	assert.Equal(t, int64(0), pricing.Food(100, 0))
}

func TestFacility(t *testing.T) {
	assert.Equal(t, int64(1500), pricing.Facility(1500))
}
