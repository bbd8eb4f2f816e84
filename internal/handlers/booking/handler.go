package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/rooms", handler.CreateBooking)
	router.Get("/admin/bookings/rooms", handler.GetBookings)
	router.Put("/admin/bookings/rooms/{id}/status", handler.UpdateBookingStatus)
}

// CreateBooking handles the creation of a new room booking.
// @Summary Book a room
// @Description Create a room booking for the authenticated user. The price is taken from the room at booking time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all room bookings based on query parameters.
// @Summary Get all room bookings
// @Description Admin listing of room bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.NewFilterGroup()

	for _, field := range []string{model.FieldRoomID, model.FieldUserID, model.FieldStatus} {
		filterGroup.Where(gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    r.URL.Query().Get(field),
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateBookingStatus changes the status of a room booking.
// @Summary Update room booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/rooms/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}
