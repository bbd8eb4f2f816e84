package payment

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"sync"
)

const (
	mockOrderStatus   = "created"
	mockPaymentStatus = "captured"
	mockPaymentMethod = "card"
)

// mockGateway answers without network access, for local development.
// Orders live in memory and are lost on restart.
type mockGateway struct {
	cfg  *config.Config
	otel otel.Otel

	mu     sync.RWMutex
	orders map[string]Order
}

func (g *mockGateway) CreateOrder(ctx context.Context, amount int64, notes map[string]string) (Order, error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.mock.CreateOrder")
	defer scope.End()

	now := timezone.Now()

	order := Order{
		ID:       mockOrderPrefix + formatUnix(now),
		Amount:   amount * MinorUnits,
		Currency: g.cfg.Payment.Currency,
		Receipt:  receipt(now),
		Status:   mockOrderStatus,
		Notes:    notes,
	}

	g.mu.Lock()
	g.orders[order.ID] = order
	g.mu.Unlock()

	return order, nil
}

func (g *mockGateway) FetchOrder(ctx context.Context, orderID string) (Order, error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.mock.FetchOrder")
	defer scope.End()

	g.mu.RLock()
	order, ok := g.orders[orderID]
	g.mu.RUnlock()

	if !ok {
		return Order{}, fmt.Errorf("%w: order %s does not exist", ErrGateway, orderID)
	}

	return order, nil
}

func (g *mockGateway) FetchPayment(ctx context.Context, paymentID string) (Payment, error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.mock.FetchPayment")
	defer scope.End()

	return Payment{
		ID:       paymentID,
		Currency: g.cfg.Payment.Currency,
		Status:   mockPaymentStatus,
		Method:   mockPaymentMethod,
	}, nil
}
