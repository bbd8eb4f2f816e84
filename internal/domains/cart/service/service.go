package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/pricing"
	facilityModel "hotel/internal/domains/facility/model"
	facilityRepo "hotel/internal/domains/facility/repository"
	foodModel "hotel/internal/domains/food/model"
	foodRepo "hotel/internal/domains/food/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	reasonFoodUnavailable = "food item unavailable"
)

type Cart interface {
	Quote(ctx context.Context, lines []model.Line) (model.Quote, error)
}

type serviceImpl struct {
	roomRepo     roomRepo.Room
	foodRepo     foodRepo.Food
	facilityRepo facilityRepo.Facility
	otel         otel.Otel
}

func New(roomRepo roomRepo.Room, foodRepo foodRepo.Food, facilityRepo facilityRepo.Facility, otel otel.Otel) Cart {
	return &serviceImpl{
		roomRepo:     roomRepo,
		foodRepo:     foodRepo,
		facilityRepo: facilityRepo,
		otel:         otel,
	}
}

type catalog struct {
	rooms      map[string]roomModel.Room
	foods      map[string]foodModel.Food
	facilities map[string]facilityModel.Facility
}

// Quote prices every line against a fresh catalog read. Missing or unavailable food is
// skipped; an unknown room or facility fails the whole cart.
func (s *serviceImpl) Quote(ctx context.Context, lines []model.Line) (res model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	cat, err := s.load(ctx, model.IDs(lines))
	if err != nil {
		return res, err
	}

	res.Lines = make([]model.PricedLine, 0, len(lines))

	for _, line := range lines {
		switch l := line.(type) {
		case model.RoomLine:
			room, ok := cat.rooms[l.RoomID]
			if !ok {
				return res, failure.NotFound(fmt.Sprintf("room %s not found", l.RoomID)) // nolint:wrapcheck
			}

			if !room.Available {
				return res, failure.BadRequestFromString(fmt.Sprintf("room %s is not available", l.RoomID)) // nolint:wrapcheck
			}

			price, err := pricing.Room(room.Price, l.CheckIn, l.CheckOut)
			if err != nil {
				return res, err
			}

			res.Add(l, price)
		case model.FoodLine:
			food := cat.foods[l.FoodID]
			if !food.Orderable() {
				log.Warn().Str("food_id", l.FoodID).Msg("skipping unavailable food item in cart")
				res.Skip(l, reasonFoodUnavailable)

				continue
			}

			res.Add(l, pricing.Food(food.Price, l.Quantity))
		case model.FacilityLine:
			facility, ok := cat.facilities[l.FacilityID]
			if !ok {
				return res, failure.NotFound(fmt.Sprintf("facility %s not found", l.FacilityID)) // nolint:wrapcheck
			}

			if !facility.HasSlot(l.TimeSlot) {
				return res, failure.BadRequestFromString(fmt.Sprintf("facility %s has no slot %s", l.FacilityID, l.TimeSlot)) // nolint:wrapcheck
			}

			if !facility.OpenOn(l.Date.Weekday()) {
				return res, failure.BadRequestFromString(fmt.Sprintf("facility %s is closed on %s", l.FacilityID, l.Date.Weekday())) // nolint:wrapcheck
			}

			res.Add(l, pricing.Facility(facility.Price))
		}
	}

	scope.SetAttribute("cart.total", res.Total)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, ids map[string][]string) (cat catalog, err error) {
	cat = catalog{
		rooms:      map[string]roomModel.Room{},
		foods:      map[string]foodModel.Food{},
		facilities: map[string]facilityModel.Facility{},
	}

	if roomIDs := ids[constant.KindRoom]; len(roomIDs) > 0 {
		rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(roomIDs, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to load cart rooms")

			return cat, fmt.Errorf("failed to load cart rooms: %w", err)
		}

		for _, room := range rooms {
			cat.rooms[room.ID] = room
		}
	}

	if foodIDs := ids[constant.KindFood]; len(foodIDs) > 0 {
		foods, err := s.foodRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(foodIDs, foodModel.FieldID, foodModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to load cart food items")

			return cat, fmt.Errorf("failed to load cart food items: %w", err)
		}

		for _, food := range foods {
			cat.foods[food.ID] = food
		}
	}

	if facilityIDs := ids[constant.KindFacility]; len(facilityIDs) > 0 {
		facilities, err := s.facilityRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(facilityIDs, facilityModel.FieldID, facilityModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to load cart facilities")

			return cat, fmt.Errorf("failed to load cart facilities: %w", err)
		}

		for _, facility := range facilities {
			cat.facilities[facility.ID] = facility
		}
	}

	return cat, nil
}
