package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "room_booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentID       = "payment_id"
	FieldRazorpayOrderID = "razorpay_order_id"
)

// Booking is a room stay. TotalPrice is the nightly rate times the nights booked.
type Booking struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	RoomID          string    `db:"room_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Guests          int       `db:"guests"`
	TotalPrice      int64     `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentID       string    `db:"payment_id"`
	RazorpayOrderID string    `db:"razorpay_order_id"`
	model.Metadata
}
