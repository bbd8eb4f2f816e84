// Package pricing holds the price rules shared by quoting, direct bookings and settlement.
// Every persisted total is derived from these functions so the amount charged by the
// gateway and the amounts written to storage cannot diverge.
package pricing

import (
	"hotel/shared/constant"
	"hotel/shared/failure"
	"math"
	"time"
)

// Nights returns the number of billable nights between check-in and check-out,
// rounding partial days up.
func Nights(checkIn, checkOut time.Time) (int, error) {
	hours := checkOut.Sub(checkIn).Hours()

	nights := int(math.Ceil(hours / constant.HoursPerDay))
	if nights <= 0 {
		return 0, failure.InvalidRange("check-out must be after check-in") // nolint:wrapcheck
	}

	return nights, nil
}

// Room prices a stay at the nightly rate.
func Room(nightly int64, checkIn, checkOut time.Time) (int64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return nightly * int64(nights), nil
}

// Food prices a food line from the current catalog price.
func Food(price int64, quantity int) int64 {
	if quantity <= 0 {
		return 0
	}

	return price * int64(quantity)
}

// Facility prices a single slot. The base price is flat.
func Facility(price int64) int64 {
	return price
}
