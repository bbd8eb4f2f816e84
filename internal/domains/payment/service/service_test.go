package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/payment"
	paymentMocks "hotel/infras/payment/mocks"
	cartMocks "hotel/internal/domains/cart/mocks"
	cartModel "hotel/internal/domains/cart/model"
	cartDto "hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/domains/payment/service"
	settlementMocks "hotel/internal/domains/settlement/mocks"
	settlementModel "hotel/internal/domains/settlement/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

const secret = "test-secret"

type fixture struct {
	svc        service.Payment
	gateway    *paymentMocks.MockGateway
	cart       *cartMocks.MockCart
	settlement *settlementMocks.MockSettlement
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Payment.KeyID = "rzp_test"
	cfg.Payment.KeySecret = secret
	cfg.Payment.TimeoutSeconds = 5

	f := fixture{
		gateway:    paymentMocks.NewMockGateway(ctrl),
		cart:       cartMocks.NewMockCart(ctrl),
		settlement: settlementMocks.NewMockSettlement(ctrl),
	}
	f.svc = service.New(f.gateway, payment.NewVerifier(cfg), f.cart, f.settlement, cfg, mocks.NewOtel())

	return f
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func foodCart() cartDto.CartRequest {
	return cartDto.CartRequest{Items: []cartDto.CartItemRequest{{ID: "paneer", Type: constant.KindFood, Quantity: 3}}}
}

func TestPaymentService_CreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantErr   error
		wantCode  int
	}{
		{
			name: "order created for quoted total",
			ctx:  userCtx(),
			setupMock: func(f fixture) {
				f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{Total: 300}, nil)
				f.gateway.EXPECT().CreateOrder(gomock.Any(), int64(300), map[string]string{"user_id": "user-1"}).
					Return(payment.Order{ID: "order_1", Amount: 30000, Currency: "INR"}, nil)
			},
		},
		{
			name:      "unauthenticated",
			ctx:       context.Background(),
			setupMock: func(_ fixture) {},
			wantCode:  401,
		},
		{
			name: "empty total",
			ctx:  userCtx(),
			setupMock: func(f fixture) {
				f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{}, nil)
			},
			wantCode: 400,
		},
		{
			name: "gateway timeout",
			ctx:  userCtx(),
			setupMock: func(f fixture) {
				f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{Total: 300}, nil)
				f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Order{}, fmt.Errorf("%w: deadline", payment.ErrTimeout))
			},
			wantErr: failure.ErrGatewayTimeout,
		},
		{
			name: "gateway error",
			ctx:  userCtx(),
			setupMock: func(f fixture) {
				f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{Total: 300}, nil)
				f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Order{}, payment.ErrGateway)
			},
			wantErr: payment.ErrGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CreateOrder(tt.ctx, dto.CreateOrderRequest{CartRequest: foodCart()})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != 0:
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, "order_1", res.OrderID)
				assert.Equal(t, int64(30000), res.Amount)
				assert.Equal(t, "rzp_test", res.KeyID)
				assert.Equal(t, int64(300), res.Quote.Total)
			}
		})
	}
}

func paidOrder(f fixture, total, amount int64, owner string) {
	f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{Total: total}, nil)
	f.gateway.EXPECT().FetchOrder(gomock.Any(), "order_1").
		Return(payment.Order{ID: "order_1", Amount: amount, Notes: map[string]string{"user_id": owner}}, nil)
}

func TestPaymentService_Verify(t *testing.T) {
	valid := payment.Sign([]byte(secret), "order_1", "pay_1")

	tests := []struct {
		name      string
		signature string
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name:      "verified payment is settled",
			signature: valid,
			setupMock: func(f fixture) {
				paidOrder(f, 300, 30000, "user-1")
				f.settlement.EXPECT().Settle(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, v payment.VerifiedPayment, lines []cartModel.Line) (settlementModel.Result, error) {
						assert.True(t, v.IsVerified())
						assert.Len(t, lines, 1)

						return settlementModel.Result{FoodOrdersCreated: 1, Total: 300}, nil
					})
			},
		},
		{
			name:      "tampered signature never settles",
			signature: "deadbeef",
			setupMock: func(_ fixture) {},
			wantErr:   failure.ErrPaymentVerificationFailed,
		},
		{
			name:      "cart priced above the paid amount never settles",
			signature: valid,
			setupMock: func(f fixture) {
				paidOrder(f, 10000, 30000, "user-1")
			},
			wantErr: failure.ErrPaymentVerificationFailed,
		},
		{
			name:      "order paid by another user never settles",
			signature: valid,
			setupMock: func(f fixture) {
				paidOrder(f, 300, 30000, "user-2")
			},
			wantErr: failure.ErrPaymentVerificationFailed,
		},
		{
			name:      "gateway timeout while fetching the order",
			signature: valid,
			setupMock: func(f fixture) {
				f.cart.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(cartModel.Quote{Total: 300}, nil)
				f.gateway.EXPECT().FetchOrder(gomock.Any(), "order_1").
					Return(payment.Order{}, fmt.Errorf("%w: deadline", payment.ErrTimeout))
			},
			wantErr: failure.ErrGatewayTimeout,
		},
		{
			name:      "conflict keeps the result",
			signature: valid,
			setupMock: func(f fixture) {
				paidOrder(f, 300, 30000, "user-1")
				f.settlement.EXPECT().Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(settlementModel.Result{Conflicts: 1}, failure.SlotConflict("1 facility slot(s) were already booked"))
			},
			wantErr: failure.ErrSlotConflict,
		},
		{
			name:      "already settled payment is refused",
			signature: valid,
			setupMock: func(f fixture) {
				paidOrder(f, 300, 30000, "user-1")
				f.settlement.EXPECT().Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(settlementModel.Result{}, failure.PaymentVerificationFailed("payment has already been settled"))
			},
			wantErr: failure.ErrPaymentVerificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Verify(userCtx(), dto.VerifyRequest{
				RazorpayOrderID:   "order_1",
				RazorpayPaymentID: "pay_1",
				RazorpaySignature: tt.signature,
				CartRequest:       foodCart(),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				if errors.Is(tt.wantErr, failure.ErrSlotConflict) {
					assert.Equal(t, 1, res.Result.Conflicts)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pay_1", res.PaymentID)
			assert.Equal(t, int64(300), res.Result.Total)
		})
	}
}

func TestPaymentService_Status(t *testing.T) {
	f := newFixture(t)

	f.gateway.EXPECT().FetchPayment(gomock.Any(), "pay_1").
		Return(payment.Payment{ID: "pay_1", OrderID: "order_1", Status: "captured", Amount: 30000}, nil)

	res, err := f.svc.Status(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.Equal(t, "captured", res.Status)
	assert.Equal(t, int64(30000), res.Amount)
}
