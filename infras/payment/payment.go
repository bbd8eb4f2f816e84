package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// MinorUnits converts a whole-unit price into the gateway's smallest currency unit.
	MinorUnits = 100

	receiptPrefix   = "receipt_"
	mockOrderPrefix = "mock_order_"
)

var (
	ErrGateway = errors.New("payment gateway error")
	ErrTimeout = errors.New("payment gateway timed out")
)

// Order is a gateway payment order. Amount is in minor units.
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Payment is a captured or attempted payment as reported by the gateway.
type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, notes map[string]string) (Order, error)
	FetchOrder(ctx context.Context, orderID string) (Order, error)
	FetchPayment(ctx context.Context, paymentID string) (Payment, error)
}

// New returns the Razorpay client, or an offline gateway when Payment.Mock is set.
func New(cfg *config.Config, otel otel.Otel) Gateway {
	if cfg.Payment.Mock {
		log.Warn().Msg("Payment gateway running in mock mode")

		return &mockGateway{cfg: cfg, otel: otel, orders: map[string]Order{}}
	}

	timeout := time.Duration(cfg.Payment.TimeoutSeconds) * time.Second

	return &razorpayGateway{
		cfg:    cfg,
		otel:   otel,
		client: &http.Client{Timeout: timeout},
	}
}

func receipt(now time.Time) string {
	return receiptPrefix + formatUnix(now)
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
