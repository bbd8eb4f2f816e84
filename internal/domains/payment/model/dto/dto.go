package dto

import (
	"hotel/infras/payment"
	cartDto "hotel/internal/domains/cart/model/dto"
	settlementModel "hotel/internal/domains/settlement/model"
)

type CreateOrderRequest struct {
	cartDto.CartRequest
}

type CreateOrderResponse struct {
	OrderID  string                `json:"order_id"`
	Amount   int64                 `json:"amount"`
	Currency string                `json:"currency"`
	Receipt  string                `json:"receipt"`
	KeyID    string                `json:"key_id"`
	Quote    cartDto.QuoteResponse `json:"quote"`
}

func (r *CreateOrderResponse) FromModel(order payment.Order, keyID string, quote cartDto.QuoteResponse) {
	r.OrderID = order.ID
	r.Amount = order.Amount
	r.Currency = order.Currency
	r.Receipt = order.Receipt
	r.KeyID = keyID
	r.Quote = quote
}

// VerifyRequest carries the checkout callback fields together with the cart being paid for.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"   validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"  validate:"required"`
	cartDto.CartRequest
}

type VerifyResponse struct {
	PaymentID string                 `json:"payment_id"`
	OrderID   string                 `json:"order_id"`
	Result    settlementModel.Result `json:"result"`
}

type StatusResponse struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Method    string `json:"method"`
}

func (r *StatusResponse) FromModel(p payment.Payment) {
	r.PaymentID = p.ID
	r.OrderID = p.OrderID
	r.Amount = p.Amount
	r.Currency = p.Currency
	r.Status = p.Status
	r.Method = p.Method
}
