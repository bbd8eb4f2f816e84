package model

import "time"

const EventSettlementCompleted = "settlement.completed"

// Result counts what a settlement produced. Total sums the prices of created records.
type Result struct {
	RoomBookingsCreated     int   `json:"room_bookings_created"`
	FacilityBookingsCreated int   `json:"facility_bookings_created"`
	FoodOrdersCreated       int   `json:"food_orders_created"`
	Skipped                 int   `json:"skipped"`
	Conflicts               int   `json:"conflicts"`
	Failures                int   `json:"failures"`
	Total                   int64 `json:"total"`
}

func (r Result) Created() int {
	return r.RoomBookingsCreated + r.FacilityBookingsCreated + r.FoodOrdersCreated
}

// CompletedEvent is published after every settlement that ran.
type CompletedEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Result    Result    `json:"result"`
	SettledAt time.Time `json:"settled_at"`
}
