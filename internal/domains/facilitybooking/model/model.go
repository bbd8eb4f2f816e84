package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "facility_bookings"
	EntityName = "facility_booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldFacilityID      = "facility_id"
	FieldDate            = "date"
	FieldTimeSlot        = "time_slot"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentID       = "payment_id"
	FieldRazorpayOrderID = "razorpay_order_id"

	// ActiveSlotIndex is the partial unique index over active (facility_id, date, time_slot) rows.
	ActiveSlotIndex = "facility_bookings_active_slot_idx"
)

type FacilityBooking struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	FacilityID      string    `db:"facility_id"`
	Date            time.Time `db:"date"`
	TimeSlot        string    `db:"time_slot"`
	TotalPrice      int64     `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentID       string    `db:"payment_id"`
	RazorpayOrderID string    `db:"razorpay_order_id"`
	model.Metadata
}
