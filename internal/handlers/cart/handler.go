package cart

import (
	"hotel/infras/otel"
	"hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/cart/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/cart/quote", handler.Quote)
}

// Quote prices a cart against the current catalog.
// @Summary Price a cart
// @Description Items whose catalog entry is missing or unavailable are returned as skipped with a zero price.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.CartRequest true "Cart"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.CartRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	lines, err := req.Lines()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	quote, err := handler.service.Quote(ctx, lines)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote cart")

		response.WithError(w, err)

		return
	}

	res := dto.QuoteResponse{}
	res.FromModel(quote)

	response.WithJSON(w, http.StatusOK, res)
}
