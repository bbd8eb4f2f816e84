package dto

import (
	"hotel/infras/payment"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1,max=20"`
}

func (c *CreateBookingRequest) ParseStay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = shared.ParseDate(c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = shared.ParseDate(c.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

// ToModel builds the booking. Only a verified payment marks it confirmed and paid.
func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, price int64, paid payment.VerifiedPayment) model.Booking {
	status, paymentStatus := constant.StatusPending, constant.PaymentStatusPending
	if paid.IsVerified() {
		status, paymentStatus = constant.StatusConfirmed, constant.PaymentStatusPaid
	}

	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          user,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		TotalPrice:      price,
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentID:       paid.PaymentID(),
		RazorpayOrderID: paid.OrderID(),
		Metadata:        gModel.NewMetadata(user),
	}
}

type UpdateStatusRequest struct {
	Status        string `db:"status"         json:"status"         validate:"required,oneof=pending confirmed cancelled"`
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	TotalPrice      int64  `json:"total_price"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	PaymentID       string `json:"payment_id,omitempty"`
	RazorpayOrderID string `json:"razorpay_order_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentID = model.PaymentID
	r.RazorpayOrderID = model.RazorpayOrderID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
