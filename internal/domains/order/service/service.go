package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/payment"
	"hotel/internal/domains/cart/pricing"
	foodModel "hotel/internal/domains/food/model"
	foodRepo "hotel/internal/domains/food/repository"
	"hotel/internal/domains/order/model"
	"hotel/internal/domains/order/model/dto"
	"hotel/internal/domains/order/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Order interface {
	Place(ctx context.Context, req dto.PlaceOrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
}

type serviceImpl struct {
	repo     repository.Order
	foodRepo foodRepo.Food
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Order, foodRepo foodRepo.Food, cfg *config.Config, otel otel.Otel) Order {
	return &serviceImpl{
		repo:     repo,
		foodRepo: foodRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

// Place writes a multi-item order. Items that are missing or unavailable are dropped,
// and each kept item is priced from the current catalog.
func (s *serviceImpl) Place(ctx context.Context, req dto.PlaceOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	foods, err := s.foodRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(req.FoodIDs(), foodModel.FieldID, foodModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food items")

		return res, fmt.Errorf("failed to get food items: %w", err)
	}

	catalog := make(map[string]foodModel.Food, len(foods))
	for _, food := range foods {
		catalog[food.ID] = food
	}

	items := make([]model.Item, 0, len(req.Items))

	for _, line := range req.Items {
		food := catalog[line.FoodID]
		if !food.Orderable() {
			log.Warn().Str("food_id", line.FoodID).Msg("skipping unavailable food item")

			continue
		}

		items = append(items, model.Item{
			FoodID:   line.FoodID,
			Quantity: line.Quantity,
			Price:    pricing.Food(food.Price, line.Quantity),
		})
	}

	if len(items) == 0 {
		return res, failure.BadRequestFromString("none of the requested food items can be ordered") // nolint:wrapcheck
	}

	order, items := dto.BuildOrder(user, items, payment.VerifiedPayment{})

	if err = s.repo.Create(ctx, order, items); err != nil {
		log.Error().Err(err).Msg("failed to place order")

		return res, fmt.Errorf("failed to place order: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := s.repo.Items(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModels(orders, items, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if order exists")

		return fmt.Errorf("failed to check if order exists: %w", err)
	}

	if !exist {
		return failure.NotFound("order not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if req.Status == constant.OrderStatusDelivered {
		updatedFields[model.FieldDeliveryTime] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update order status")

		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}
