package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentID       = "payment_id"
	FieldRazorpayOrderID = "razorpay_order_id"
	FieldDeliveryTime    = "delivery_time"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	ItemFieldID       = "id"
	ItemFieldOrderID  = "order_id"
	ItemFieldFoodID   = "food_id"
	ItemFieldQuantity = "quantity"
	ItemFieldPrice    = "price"
)

// Order is a food order. TotalPrice is the sum of its item prices.
type Order struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	TotalPrice      int64      `db:"total_price"`
	Status          string     `db:"status"`
	PaymentStatus   string     `db:"payment_status"`
	PaymentID       string     `db:"payment_id"`
	RazorpayOrderID string     `db:"razorpay_order_id"`
	DeliveryTime    *time.Time `db:"delivery_time"`
	model.Metadata
}

// Item is one order line. Price is snapshotted when the order is written.
type Item struct {
	ID       string `db:"id"`
	OrderID  string `db:"order_id"`
	FoodID   string `db:"food_id"`
	Quantity int    `db:"quantity"`
	Price    int64  `db:"price"`
}

// Total sums item prices.
func Total(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}

	return total
}
