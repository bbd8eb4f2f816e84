package food

import (
	"hotel/infras/otel"
	"hotel/internal/domains/food/model"
	"hotel/internal/domains/food/model/dto"
	"hotel/internal/domains/food/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Food
	otel    otel.Otel
}

func New(service service.Food, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/foods", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFoods)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetFoodByID)
	})
}

// GetFoods lists the menu.
// @Summary Get menu items
// @Tags Food
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param available query boolean false "Filter by availability"
// @Param vegetarian query boolean false "Only vegetarian dishes"
// @Success 200 {object} response.Data[dto.GetFoodsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/foods [get]
func (handler *Handler) GetFoods(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoods")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.NewFilterGroup()
	filterGroup.Where(gDto.Filter{
		Field:    model.FieldCategory,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldCategory),
		Table:    model.TableName,
	})

	for _, field := range []string{model.FieldAvailable, model.FieldVegetarian, model.FieldSpicy} {
		if value := shared.ConvertStringToBool(query.Get(field)); value != nil {
			filterGroup.Where(gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    *value,
				Table:    model.TableName,
			})
		}
	}

	foods, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get foods")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, foods)
}

// GetCategories lists the distinct menu categories.
// @Summary Get menu categories
// @Tags Food
// @Produce json
// @Success 200 {object} response.Data[dto.CategoriesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/foods/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.Categories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, categories)
}

// GetFoodByID retrieves one menu item.
// @Summary Get a menu item by ID
// @Tags Food
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} response.Data[dto.FoodResponse]
// @Failure 404 {object} response.Error
// @Router /v1/foods/{id} [get]
func (handler *Handler) GetFoodByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodByID")
	defer scope.End()

	var (
		food dto.FoodResponse
		err  error
	)

	food, err = handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, food)
}
