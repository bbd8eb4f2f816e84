package history

import (
	"hotel/infras/otel"
	"hotel/internal/domains/history/model/dto"
	"hotel/internal/domains/history/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	otel    otel.Otel
}

func New(service service.History, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/me", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings", handler.GetMyBookings)
		routerGroup.Get("/stats", handler.GetMyStats)
	})
}

// GetMyBookings lists the caller's bookings or orders of one kind, newest first.
// @Summary Get my booking history
// @Tags History
// @Produce json
// @Param kind query string true "room, facility or food"
// @Param limit query integer false "Maximum number of records, 0 for all"
// @Success 200 {object} response.Data[dto.HistoryResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/me/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	limit := 0

	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != "" {
		parsed, err := shared.ConvertStringToInt(raw)
		if err != nil {
			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = parsed
	}

	var (
		history dto.HistoryResponse
		err     error
	)

	history, err = handler.service.ListForUser(ctx, userID, r.URL.Query().Get(constant.RequestParamKind), limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, history)
}

// GetMyStats summarises the caller's bookings and loyalty points.
// @Summary Get my booking stats
// @Tags History
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/me/stats [get]
// @Security BearerAuth
func (handler *Handler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyStats")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stats, err := handler.service.StatsForUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
