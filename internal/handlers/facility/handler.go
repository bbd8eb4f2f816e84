package facility

import (
	"hotel/infras/otel"
	"hotel/internal/domains/facility/model"
	"hotel/internal/domains/facility/model/dto"
	"hotel/internal/domains/facility/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Get("/{id}/slots", handler.GetAvailableSlots)
	})
}

// GetFacilities lists bookable facilities.
// @Summary Get facilities
// @Tags Facility
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.NewFilterGroup()
	filterGroup.Where(gDto.Filter{
		Field:    model.FieldName,
		Operator: gDto.FilterOperatorLike,
		Value:    r.URL.Query().Get(model.FieldName),
		Table:    model.TableName,
	})

	facilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID retrieves one facility.
// @Summary Get a facility by ID
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse]
// @Failure 404 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	var (
		facility dto.FacilityResponse
		err      error
	)

	facility, err = handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facility)
}

// GetAvailableSlots lists the free time slots of a facility on a date.
// @Summary Get available slots
// @Description Slots already held by pending or confirmed bookings are left out. Closed days return an empty list.
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.AvailableSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/{id}/slots [get]
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		date = timezone.Today().Format(constant.DateOnlyFormat)
	}

	slots, err := handler.service.AvailableSlots(ctx, chi.URLParam(r, constant.RequestParamID), date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}
