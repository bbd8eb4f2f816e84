package facilitybooking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/internal/domains/facilitybooking/model/dto"
	"hotel/internal/domains/facilitybooking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FacilityBooking
	otel    otel.Otel
}

func New(service service.FacilityBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/facilities", handler.BookFacility)
	router.Get("/admin/bookings/facilities", handler.GetFacilityBookings)
	router.Put("/admin/bookings/facilities/{id}/status", handler.UpdateFacilityBookingStatus)
}

// BookFacility reserves a facility time slot.
// @Summary Book a facility slot
// @Description Reserve one time slot of a facility on a date. A slot held by another pending or confirmed booking is rejected.
// @Tags FacilityBooking
// @Accept json
// @Produce json
// @Param request body dto.BookFacilityRequest true "Book Facility Request"
// @Success 201 {object} response.Data[dto.FacilityBookingResponse] "Facility booked"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/facilities [post]
// @Security BearerAuth
func (handler *Handler) BookFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookFacility")
	defer scope.End()

	req := dto.BookFacilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility booked for slot " + req.Date + " " + req.TimeSlot)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetFacilityBookings lists facility bookings for administrators.
// @Summary Get all facility bookings
// @Tags FacilityBooking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param facility_id query string false "Filter by facility ID"
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetFacilityBookingsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/facilities [get]
// @Security BearerAuth
func (handler *Handler) GetFacilityBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.NewFilterGroup()

	fields := []string{model.FieldFacilityID, model.FieldUserID, model.FieldStatus, model.FieldDate}
	for _, field := range fields {
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
		log.Error().Err(err).Msg("failed to get facility bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateFacilityBookingStatus changes the status of a facility booking.
// @Summary Update facility booking status
// @Description Cancelling releases the slot. Re-confirming fails with 409 when the slot was taken meanwhile.
// @Tags FacilityBooking
// @Accept json
// @Produce json
// @Param id path string true "Facility booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/bookings/facilities/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateFacilityBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacilityBookingStatus")
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
		log.Error().Err(err).Msg("failed to update facility booking status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Facility booking status updated successfully")
}
