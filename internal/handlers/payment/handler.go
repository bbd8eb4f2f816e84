package payment

import (
	"errors"
	"hotel/infras/otel"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/domains/payment/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/orders", handler.CreateOrder)
		routerGroup.Post("/verify", handler.Verify)
		routerGroup.Get("/{paymentId}/status", handler.Status)
	})
}

// CreateOrder opens a gateway order for the priced cart.
// @Summary Create a payment order
// @Description Prices the cart and opens a gateway order for its total.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Cart to pay for"
// @Success 201 {object} response.Data[dto.CreateOrderResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/payments/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment order created " + order.OrderID)

	response.WithJSON(w, http.StatusCreated, order)
}

// Verify checks the checkout signature and settles the cart.
// @Summary Verify a payment
// @Description Verifies the gateway signature, then books every cart item. A slot conflict returns 409 with the settlement result.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verify Request"
// @Success 200 {object} response.Data[dto.VerifyResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.ErrorWithData[dto.VerifyResponse]
// @Failure 500 {object} response.ErrorWithData[dto.VerifyResponse]
// @Router /v1/payments/verify [post]
// @Security BearerAuth
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	req := dto.VerifyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("payment_id", req.RazorpayPaymentID).Msg("failed to verify payment")

		if errors.Is(err, failure.ErrSlotConflict) || errors.Is(err, failure.ErrPartialSettlement) {
			response.WithErrorData(w, err, res)

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment verified " + res.PaymentID)

	response.WithJSON(w, http.StatusOK, res)
}

// Status fetches the gateway status of a payment.
// @Summary Get payment status
// @Tags Payment
// @Produce json
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} response.Data[dto.StatusResponse]
// @Failure 404 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/payments/{paymentId}/status [get]
// @Security BearerAuth
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	status, err := handler.service.Status(ctx, chi.URLParam(r, constant.RequestParamPaymentID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
