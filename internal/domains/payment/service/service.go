package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/payment"
	cartModel "hotel/internal/domains/cart/model"
	cartDto "hotel/internal/domains/cart/model/dto"
	cartService "hotel/internal/domains/cart/service"
	"hotel/internal/domains/payment/model/dto"
	settlementService "hotel/internal/domains/settlement/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const noteUserID = "user_id"

type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
	Status(ctx context.Context, paymentID string) (dto.StatusResponse, error)
}

type serviceImpl struct {
	gateway    payment.Gateway
	verifier   payment.Verifier
	cart       cartService.Cart
	settlement settlementService.Settlement
	cfg        *config.Config
	otel       otel.Otel
}

func New(gateway payment.Gateway, verifier payment.Verifier, cart cartService.Cart,
	settlement settlementService.Settlement, cfg *config.Config, otel otel.Otel,
) Payment {
	return &serviceImpl{
		gateway:    gateway,
		verifier:   verifier,
		cart:       cart,
		settlement: settlement,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	lines, err := req.Lines()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	quote, err := s.cart.Quote(ctx, lines)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if quote.Total <= 0 {
		return res, failure.BadRequestFromString("cart total must be greater than zero") // nolint:wrapcheck
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Payment.TimeoutSeconds)*time.Second)
	defer cancel()

	order, err := s.gateway.CreateOrder(timeoutCtx, quote.Total, map[string]string{noteUserID: user})
	if err != nil {
		log.Error().Err(err).Int64("total", quote.Total).Msg("failed to create payment order")

		return res, gatewayError(err, "failed to create payment order")
	}

	quoteRes := cartDto.QuoteResponse{}
	quoteRes.FromModel(quote)
	res.FromModel(order, s.cfg.Payment.KeyID, quoteRes)

	return res, nil
}

// Verify checks the checkout signature, reconciles the cart against the paid gateway order,
// and settles it. A slot conflict still returns the settlement result alongside the error.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	lines, err := req.Lines()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	verified, err := s.verifier.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		log.Warn().Err(err).Str("order_id", req.RazorpayOrderID).Msg("payment signature rejected")

		return res, err //nolint:wrapcheck
	}

	if err = s.reconcile(ctx, user, verified, lines); err != nil {
		return res, err
	}

	res.PaymentID = verified.PaymentID()
	res.OrderID = verified.OrderID()

	res.Result, err = s.settlement.Settle(ctx, user, verified, lines)
	if err != nil {
		log.Error().Err(err).Str("payment_id", res.PaymentID).Msg("settlement finished with errors")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Status(ctx context.Context, paymentID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Payment.TimeoutSeconds)*time.Second)
	defer cancel()

	p, err := s.gateway.FetchPayment(timeoutCtx, paymentID)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("failed to fetch payment")

		return res, gatewayError(err, "failed to fetch payment")
	}

	res.FromModel(p)

	return res, nil
}

// reconcile requires the gateway order behind the payment to belong to the caller and
// to carry exactly the amount the submitted cart prices to.
func (s *serviceImpl) reconcile(ctx context.Context, user string, verified payment.VerifiedPayment, lines []cartModel.Line) error {
	quote, err := s.cart.Quote(ctx, lines)
	if err != nil {
		return err //nolint:wrapcheck
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Payment.TimeoutSeconds)*time.Second)
	defer cancel()

	order, err := s.gateway.FetchOrder(timeoutCtx, verified.OrderID())
	if err != nil {
		log.Error().Err(err).Str("order_id", verified.OrderID()).Msg("failed to fetch paid order")

		return gatewayError(err, "failed to fetch paid order")
	}

	if owner := order.Notes[noteUserID]; owner != constant.Empty && owner != user {
		log.Warn().Str("order_id", order.ID).Str("user_id", user).Msg("paid order belongs to another user")

		return failure.PaymentVerificationFailed("payment order belongs to another user") // nolint:wrapcheck
	}

	if order.Amount != quote.Total*payment.MinorUnits {
		log.Warn().
			Str("order_id", order.ID).
			Int64("paid", order.Amount).
			Int64("quoted", quote.Total*payment.MinorUnits).
			Msg("paid amount does not match cart total")

		return failure.PaymentVerificationFailed("paid amount does not match cart total") // nolint:wrapcheck
	}

	return nil
}

func gatewayError(err error, action string) error {
	if errors.Is(err, payment.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return failure.GatewayTimeout("payment gateway did not respond in time") // nolint:wrapcheck
	}

	return fmt.Errorf("%s: %w", action, err)
}
