package room

import (
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryMinCapacity = "min_capacity"
	queryMaxPrice    = "max_price"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms retrieves rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param available query boolean false "Filter by availability"
// @Param min_capacity query integer false "Minimum number of guests"
// @Param max_price query integer false "Maximum nightly price"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.NewFilterGroup()
	filterGroup.Where(gDto.Filter{
		Field:    model.FieldType,
		Operator: gDto.FilterOperatorLike,
		Value:    query.Get(model.FieldType),
		Table:    model.TableName,
	})

	if available := shared.ConvertStringToBool(query.Get(model.FieldAvailable)); available != nil {
		filterGroup.Where(gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	if capacity, err := shared.ConvertStringToInt(query.Get(queryMinCapacity)); err == nil {
		filterGroup.Where(gDto.Filter{
			ArgName:  queryMinCapacity,
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    capacity,
			Table:    model.TableName,
		})
	}

	if price, err := shared.ConvertStringToInt(query.Get(queryMaxPrice)); err == nil {
		filterGroup.Where(gDto.Filter{
			ArgName:  queryMaxPrice,
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    price,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	var (
		room dto.RoomResponse
		err  error
	)

	room, err = handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
