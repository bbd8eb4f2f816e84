package dto

import (
	"hotel/infras/payment"
	"hotel/internal/domains/order/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	FoodID   string `json:"food_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=50"`
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// FoodIDs lists the distinct food ids referenced by the request.
func (p *PlaceOrderRequest) FoodIDs() []string {
	seen := make(map[string]struct{}, len(p.Items))
	ids := make([]string, 0, len(p.Items))

	for _, item := range p.Items {
		if _, ok := seen[item.FoodID]; ok {
			continue
		}

		seen[item.FoodID] = struct{}{}
		ids = append(ids, item.FoodID)
	}

	return ids
}

// BuildOrder assembles an order from priced items. Only a verified payment marks it paid.
func BuildOrder(user string, items []model.Item, paid payment.VerifiedPayment) (model.Order, []model.Item) {
	paymentStatus := constant.PaymentStatusPending
	if paid.IsVerified() {
		paymentStatus = constant.PaymentStatusPaid
	}

	order := model.Order{
		ID:              uuid.NewString(),
		UserID:          user,
		Status:          constant.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		PaymentID:       paid.PaymentID(),
		RazorpayOrderID: paid.OrderID(),
		Metadata:        gModel.NewMetadata(user),
	}

	stamped := make([]model.Item, len(items))
	for i, item := range items {
		item.ID = uuid.NewString()
		item.OrderID = order.ID
		stamped[i] = item
	}

	order.TotalPrice = model.Total(stamped)

	return order, stamped
}

type UpdateStatusRequest struct {
	Status        string `db:"status"         json:"status"         validate:"required,oneof=pending preparing ready delivered"`
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
}

type OrderItemResponse struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalPrice      int64               `json:"total_price"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentID       string              `json:"payment_id,omitempty"`
	RazorpayOrderID string              `json:"razorpay_order_id,omitempty"`
	DeliveryTime    string              `json:"delivery_time,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.Order, items []model.Item) {
	r.ID = order.ID
	r.UserID = order.UserID
	r.TotalPrice = order.TotalPrice
	r.Status = order.Status
	r.PaymentStatus = order.PaymentStatus
	r.PaymentID = order.PaymentID
	r.RazorpayOrderID = order.RazorpayOrderID

	if order.DeliveryTime != nil {
		r.DeliveryTime = timezone.Format(*order.DeliveryTime, constant.DateFormat)
	}

	r.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		r.Items[i] = OrderItemResponse{FoodID: item.FoodID, Quantity: item.Quantity, Price: item.Price}
	}

	r.Metadata.FromModel(order.Metadata)
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(orders []model.Order, items []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byOrder := GroupItems(items)

	r.Orders = make([]OrderResponse, len(orders))
	for i, order := range orders {
		r.Orders[i].FromModel(order, byOrder[order.ID])
	}
}

// GroupItems indexes items by their order id.
func GroupItems(items []model.Item) map[string][]model.Item {
	grouped := make(map[string][]model.Item)
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}

	return grouped
}
