package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/payment"
	"hotel/internal/domains/facilitybooking/model/dto"
	"hotel/shared/constant"
)

func TestBookFacilityRequest_ToModel(t *testing.T) {
	req := dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "10:00-11:00"}
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	pending := req.ToModel("user-1", date, 500, payment.VerifiedPayment{})
	assert.Equal(t, constant.StatusPending, pending.Status)
	assert.Equal(t, constant.PaymentStatusPending, pending.PaymentStatus)
	assert.Empty(t, pending.PaymentID)

	cfg := &config.Config{}
	cfg.Payment.KeySecret = "secret"

	paid, err := payment.NewVerifier(cfg).Verify("order_1", "pay_1", payment.Sign([]byte("secret"), "order_1", "pay_1"))
	require.NoError(t, err)

	confirmed := req.ToModel("user-1", date, 500, paid)
	assert.Equal(t, constant.StatusConfirmed, confirmed.Status)
	assert.Equal(t, constant.PaymentStatusPaid, confirmed.PaymentStatus)
	assert.Equal(t, "pay_1", confirmed.PaymentID)
	assert.Equal(t, "order_1", confirmed.RazorpayOrderID)
}
