package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hotel/config"
	"hotel/shared/failure"
)

// VerifiedPayment is an order/payment pair whose gateway signature has been checked.
// The zero value is not verified, and the only way to obtain a verified one is Verifier.Verify.
type VerifiedPayment struct {
	orderID   string
	paymentID string
}

func (v VerifiedPayment) OrderID() string {
	return v.orderID
}

func (v VerifiedPayment) PaymentID() string {
	return v.paymentID
}

func (v VerifiedPayment) IsVerified() bool {
	return v.orderID != "" && v.paymentID != ""
}

type Verifier interface {
	Verify(orderID, paymentID, signature string) (VerifiedPayment, error)
}

type hmacVerifier struct {
	secret []byte
}

func NewVerifier(cfg *config.Config) Verifier {
	return &hmacVerifier{secret: []byte(cfg.Payment.KeySecret)}
}

// Verify checks signature against HMAC-SHA256(secret, orderID|paymentID), hex encoded.
func (h *hmacVerifier) Verify(orderID, paymentID, signature string) (VerifiedPayment, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return VerifiedPayment{}, failure.PaymentVerificationFailed("missing payment verification fields")
	}

	expected := Sign(h.secret, orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return VerifiedPayment{}, failure.PaymentVerificationFailed("invalid payment signature")
	}

	return VerifiedPayment{orderID: orderID, paymentID: paymentID}, nil
}

// Sign produces the signature the gateway attaches to a completed checkout.
func Sign(secret []byte, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}
