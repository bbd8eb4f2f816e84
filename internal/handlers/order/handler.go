package order

import (
	"hotel/infras/otel"
	"hotel/internal/domains/order/model"
	"hotel/internal/domains/order/model/dto"
	"hotel/internal/domains/order/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/orders", handler.PlaceOrder)
	router.Get("/admin/orders", handler.GetOrders)
	router.Put("/admin/orders/{id}/status", handler.UpdateOrderStatus)
}

// PlaceOrder places a food order.
// @Summary Place a food order
// @Description Unknown or unavailable items are left out. The request fails only when no item can be ordered.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceOrder")
	defer scope.End()

	req := dto.PlaceOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.Place(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order placed " + order.ID)

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders lists food orders for administrators.
// @Summary Get all food orders
// @Tags Order
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status (pending, preparing, ready, delivered)"
// @Param payment_status query string false "Filter by payment status (pending, paid, failed)"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.NewFilterGroup()

	for _, field := range []string{model.FieldUserID, model.FieldStatus, model.FieldPaymentStatus} {
		filterGroup.Where(gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    r.URL.Query().Get(field),
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through the kitchen workflow.
// @Summary Update order status
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/orders/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Order status updated successfully")
}
