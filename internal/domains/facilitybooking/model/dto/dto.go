package dto

import (
	"hotel/infras/payment"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"time"

	"github.com/google/uuid"
)

type BookFacilityRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Date       string `json:"date"        validate:"required,dateonly"`
	TimeSlot   string `json:"time_slot"   validate:"required,timeslot"`
}

func (b *BookFacilityRequest) ParseDate() (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, b.Date) //nolint:wrapcheck
}

// ToModel builds a booking held from creation. Only a verified payment marks it confirmed and paid.
func (b *BookFacilityRequest) ToModel(user string, date time.Time, price int64, paid payment.VerifiedPayment) model.FacilityBooking {
	status, paymentStatus := constant.StatusPending, constant.PaymentStatusPending
	if paid.IsVerified() {
		status, paymentStatus = constant.StatusConfirmed, constant.PaymentStatusPaid
	}

	return model.FacilityBooking{
		ID:              uuid.NewString(),
		UserID:          user,
		FacilityID:      b.FacilityID,
		Date:            date,
		TimeSlot:        b.TimeSlot,
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

type FacilityBookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	FacilityID      string `json:"facility_id"`
	Date            string `json:"date"`
	TimeSlot        string `json:"time_slot"`
	TotalPrice      int64  `json:"total_price"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	PaymentID       string `json:"payment_id,omitempty"`
	RazorpayOrderID string `json:"razorpay_order_id,omitempty"`
	gDto.Metadata
}

func (r *FacilityBookingResponse) FromModel(model model.FacilityBooking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FacilityID = model.FacilityID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.TimeSlot = model.TimeSlot
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentID = model.PaymentID
	r.RazorpayOrderID = model.RazorpayOrderID
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilityBookingsResponse struct {
	Bookings  []FacilityBookingResponse `json:"bookings"`
	TotalPage int                       `json:"total_page"`
	TotalData int                       `json:"total_data"`
}

func (r *GetFacilityBookingsResponse) FromModels(models []model.FacilityBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]FacilityBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
