package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	facilityModel "hotel/internal/domains/facility/model"
	facilityRepo "hotel/internal/domains/facility/repository"
	facilityBookingModel "hotel/internal/domains/facilitybooking/model"
	facilityBookingRepo "hotel/internal/domains/facilitybooking/repository"
	foodModel "hotel/internal/domains/food/model"
	foodRepo "hotel/internal/domains/food/repository"
	"hotel/internal/domains/history/model/dto"
	orderModel "hotel/internal/domains/order/model"
	orderDto "hotel/internal/domains/order/model/dto"
	orderRepo "hotel/internal/domains/order/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type History interface {
	ListForUser(ctx context.Context, userID, kind string, limit int) (dto.HistoryResponse, error)
	StatsForUser(ctx context.Context, userID string) (dto.StatsResponse, error)
}

type Repositories struct {
	Room            roomRepo.Room
	Food            foodRepo.Food
	Facility        facilityRepo.Facility
	RoomBooking     bookingRepo.Booking
	FacilityBooking facilityBookingRepo.FacilityBooking
	Order           orderRepo.Order
}

type serviceImpl struct {
	repos Repositories
	otel  otel.Otel
}

func New(repos Repositories, otel otel.Otel) History {
	return &serviceImpl{
		repos: repos,
		otel:  otel,
	}
}

// ListForUser returns the user's records of one kind, newest first. A limit of 0 returns all of them.
func (s *serviceImpl) ListForUser(ctx context.Context, userID, kind string, limit int) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	if limit < 0 {
		return res, failure.BadRequestFromString("limit must not be negative") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	res.Kind = kind

	switch kind {
	case constant.KindRoom:
		res.RoomBookings, err = s.roomBookings(ctx, userID, params)
	case constant.KindFacility:
		res.FacilityBookings, err = s.facilityBookings(ctx, userID, params)
	case constant.KindFood:
		res.FoodOrders, err = s.foodOrders(ctx, userID, params)
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking kind %q", kind)) // nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	return res, nil
}

func byUser(userID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: table},
		},
	}
}

func (s *serviceImpl) roomBookings(ctx context.Context, userID string, params gDto.QueryParams) ([]dto.RoomBookingHistory, error) {
	bookings, err := s.repos.RoomBooking.GetAll(ctx, params, byUser(userID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings for user")

		return nil, fmt.Errorf("failed to get room bookings for user: %w", err)
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.RoomID
	}

	rooms, err := s.repos.Room.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(ids, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for bookings")

		return nil, fmt.Errorf("failed to get rooms for bookings: %w", err)
	}

	byID := make(map[string]roomModel.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	history := make([]dto.RoomBookingHistory, len(bookings))
	for i, booking := range bookings {
		history[i].BookingResponse.FromModel(booking)

		if room, ok := byID[booking.RoomID]; ok {
			history[i].Room.FromModel(room)
		}
	}

	return history, nil
}

func (s *serviceImpl) facilityBookings(ctx context.Context, userID string, params gDto.QueryParams) ([]dto.FacilityBookingHistory, error) {
	bookings, err := s.repos.FacilityBooking.GetAll(ctx, params, byUser(userID, facilityBookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility bookings for user")

		return nil, fmt.Errorf("failed to get facility bookings for user: %w", err)
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.FacilityID
	}

	facilities, err := s.repos.Facility.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(ids, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities for bookings")

		return nil, fmt.Errorf("failed to get facilities for bookings: %w", err)
	}

	byID := make(map[string]facilityModel.Facility, len(facilities))
	for _, facility := range facilities {
		byID[facility.ID] = facility
	}

	history := make([]dto.FacilityBookingHistory, len(bookings))
	for i, booking := range bookings {
		history[i].FacilityBookingResponse.FromModel(booking)

		if facility, ok := byID[booking.FacilityID]; ok {
			history[i].Facility.FromModel(facility)
		}
	}

	return history, nil
}

func (s *serviceImpl) foodOrders(ctx context.Context, userID string, params gDto.QueryParams) ([]dto.FoodOrderHistory, error) {
	orders, err := s.repos.Order.GetAll(ctx, params, byUser(userID, orderModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food orders for user")

		return nil, fmt.Errorf("failed to get food orders for user: %w", err)
	}

	orderIDs := make([]string, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	items, err := s.repos.Order.Items(ctx, orderIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	foodIDs := make([]string, len(items))
	for i, item := range items {
		foodIDs[i] = item.FoodID
	}

	foods, err := s.repos.Food.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(foodIDs, foodModel.FieldID, foodModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food items for orders")

		return nil, fmt.Errorf("failed to get food items for orders: %w", err)
	}

	byID := make(map[string]foodModel.Food, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}

	grouped := orderDto.GroupItems(items)
	history := make([]dto.FoodOrderHistory, len(orders))

	for i, order := range orders {
		orderItems := grouped[order.ID]
		history[i].OrderResponse.FromModel(order, orderItems)
		history[i].Items = make([]dto.OrderItemHistory, len(orderItems))

		for j, item := range orderItems {
			history[i].Items[j].OrderItemResponse = history[i].OrderResponse.Items[j]

			if food, ok := byID[item.FoodID]; ok {
				history[i].Items[j].Food.FromModel(food)
			}
		}
	}

	return history, nil
}

func (s *serviceImpl) StatsForUser(ctx context.Context, userID string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatsForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	rooms, err := s.repos.RoomBooking.Count(ctx, byUser(userID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings for user")

		return res, fmt.Errorf("failed to count room bookings for user: %w", err)
	}

	facilities, err := s.repos.FacilityBooking.Count(ctx, byUser(userID, facilityBookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count facility bookings for user")

		return res, fmt.Errorf("failed to count facility bookings for user: %w", err)
	}

	orders, err := s.repos.Order.Count(ctx, byUser(userID, orderModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count food orders for user")

		return res, fmt.Errorf("failed to count food orders for user: %w", err)
	}

	res.FromCounts(rooms, facilities, orders)

	return res, nil
}
