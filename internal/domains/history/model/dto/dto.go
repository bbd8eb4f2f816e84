package dto

import (
	bookingDto "hotel/internal/domains/booking/model/dto"
	facilityDto "hotel/internal/domains/facility/model/dto"
	facilityBookingDto "hotel/internal/domains/facilitybooking/model/dto"
	foodDto "hotel/internal/domains/food/model/dto"
	orderDto "hotel/internal/domains/order/model/dto"
	roomDto "hotel/internal/domains/room/model/dto"
)

// RoomBookingHistory pairs a booking with its room. Room is empty when the room no longer exists.
type RoomBookingHistory struct {
	bookingDto.BookingResponse
	Room roomDto.RoomResponse `json:"room"`
}

type FacilityBookingHistory struct {
	facilityBookingDto.FacilityBookingResponse
	Facility facilityDto.FacilityResponse `json:"facility"`
}

type OrderItemHistory struct {
	orderDto.OrderItemResponse
	Food foodDto.FoodResponse `json:"food"`
}

type FoodOrderHistory struct {
	orderDto.OrderResponse
	Items []OrderItemHistory `json:"items"`
}

type HistoryResponse struct {
	Kind             string                   `json:"kind"`
	RoomBookings     []RoomBookingHistory     `json:"room_bookings,omitempty"`
	FacilityBookings []FacilityBookingHistory `json:"facility_bookings,omitempty"`
	FoodOrders       []FoodOrderHistory       `json:"food_orders,omitempty"`
}

// StatsResponse summarises a guest's activity. Each booking earns 10 loyalty points and each food order 5.
type StatsResponse struct {
	TotalBookings    int `json:"total_bookings"`
	TotalOrders      int `json:"total_orders"`
	RoomBookings     int `json:"room_bookings"`
	FacilityBookings int `json:"facility_bookings"`
	LoyaltyPoints    int `json:"loyalty_points"`
}

const (
	pointsPerBooking = 10
	pointsPerOrder   = 5
)

func (r *StatsResponse) FromCounts(rooms, facilities, orders int) {
	r.RoomBookings = rooms
	r.FacilityBookings = facilities
	r.TotalBookings = rooms + facilities
	r.TotalOrders = orders
	r.LoyaltyPoints = r.TotalBookings*pointsPerBooking + orders*pointsPerOrder
}
