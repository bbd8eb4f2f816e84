package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/payment"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepo "hotel/internal/domains/booking/repository"
	cartModel "hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/pricing"
	facilityModel "hotel/internal/domains/facility/model"
	facilityRepo "hotel/internal/domains/facility/repository"
	facilityBookingModel "hotel/internal/domains/facilitybooking/model"
	facilityBookingDto "hotel/internal/domains/facilitybooking/model/dto"
	facilityBookingRepo "hotel/internal/domains/facilitybooking/repository"
	foodModel "hotel/internal/domains/food/model"
	foodRepo "hotel/internal/domains/food/repository"
	orderModel "hotel/internal/domains/order/model"
	orderDto "hotel/internal/domains/order/model/dto"
	orderRepo "hotel/internal/domains/order/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/domains/settlement/model"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type outcome int

const (
	outcomeCreated outcome = iota
	outcomeSkipped
	outcomeConflict
	outcomeFailed
)

type Settlement interface {
	Settle(ctx context.Context, userID string, verified payment.VerifiedPayment, lines []cartModel.Line) (model.Result, error)
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
	repos     Repositories
	cache     cache.RedisCache
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repos Repositories, cache cache.RedisCache, publisher kafka.Publisher, otel otel.Otel) Settlement {
	return &serviceImpl{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// Settle turns a paid cart into bookings and orders, one record per line. Lines are
// committed independently: a missing catalog item is skipped, a held facility slot is
// counted as a conflict and a storage error as a failure, and none of them undo lines
// already written. Any conflict is reported as SlotConflict alongside the result; if
// every persistable line failed the settlement is a PartialSettlementFailure.
func (s *serviceImpl) Settle(ctx context.Context, userID string, verified payment.VerifiedPayment, lines []cartModel.Line) (res model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !verified.IsVerified() {
		return res, failure.PaymentVerificationFailed("payment has not been verified") // nolint:wrapcheck
	}

	if userID == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	settled, err := s.settled(ctx, verified.PaymentID())
	if err != nil {
		return res, err
	}

	if settled {
		log.Warn().Str("payment_id", verified.PaymentID()).Msg("refusing to settle a payment twice")

		return res, failure.PaymentVerificationFailed("payment has already been settled") // nolint:wrapcheck
	}

	touched := map[string]bool{}

	for _, line := range lines {
		var (
			price  int64
			result outcome
		)

		switch l := line.(type) {
		case cartModel.RoomLine:
			price, result = s.settleRoom(ctx, userID, verified, l)
			if result == outcomeCreated {
				res.RoomBookingsCreated++
			}
		case cartModel.FacilityLine:
			price, result = s.settleFacility(ctx, userID, verified, l)
			if result == outcomeCreated {
				res.FacilityBookingsCreated++
			}
		case cartModel.FoodLine:
			price, result = s.settleFood(ctx, userID, verified, l)
			if result == outcomeCreated {
				res.FoodOrdersCreated++
			}
		}

		switch result {
		case outcomeCreated:
			res.Total += price
			touched[line.Kind()] = true
		case outcomeSkipped:
			res.Skipped++
		case outcomeConflict:
			res.Conflicts++
		case outcomeFailed:
			res.Failures++
		}
	}

	s.invalidate(ctx, touched)
	s.publish(ctx, userID, verified, res)

	scope.SetAttributes(map[string]any{
		"settlement.created":   res.Created(),
		"settlement.skipped":   res.Skipped,
		"settlement.conflicts": res.Conflicts,
		"settlement.failures":  res.Failures,
	})

	if res.Conflicts > 0 {
		return res, failure.SlotConflict(fmt.Sprintf("%d facility slot(s) were already booked", res.Conflicts)) // nolint:wrapcheck
	}

	if res.Failures > 0 && res.Created() == 0 {
		return res, failure.PartialSettlementFailure(fmt.Sprintf("%d cart line(s) could not be saved", res.Failures)) // nolint:wrapcheck
	}

	return res, nil
}

// settled reports whether any booking or order already carries paymentID.
func (s *serviceImpl) settled(ctx context.Context, paymentID string) (bool, error) {
	checks := []struct {
		kind   string
		exist  func(context.Context, gDto.FilterGroup) (bool, error)
		filter gDto.FilterGroup
	}{
		{
			kind:   constant.KindRoom,
			exist:  s.repos.RoomBooking.Exist,
			filter: shared.FilterByID(paymentID, bookingModel.FieldPaymentID, bookingModel.TableName),
		},
		{
			kind:   constant.KindFacility,
			exist:  s.repos.FacilityBooking.Exist,
			filter: shared.FilterByID(paymentID, facilityBookingModel.FieldPaymentID, facilityBookingModel.TableName),
		},
		{
			kind:   constant.KindFood,
			exist:  s.repos.Order.Exist,
			filter: shared.FilterByID(paymentID, orderModel.FieldPaymentID, orderModel.TableName),
		},
	}

	for _, check := range checks {
		exist, err := check.exist(ctx, check.filter)
		if err != nil {
			log.Error().Err(err).Str("kind", check.kind).Str("payment_id", paymentID).Msg("failed to check settled payment")

			return false, fmt.Errorf("failed to check settled payment: %w", err)
		}

		if exist {
			return true, nil
		}
	}

	return false, nil
}

func (s *serviceImpl) settleRoom(ctx context.Context, userID string, verified payment.VerifiedPayment, line cartModel.RoomLine) (int64, outcome) {
	room, err := s.repos.Room.Get(ctx, shared.FilterByID(line.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", line.RoomID).Msg("failed to get room for settlement")

		return 0, outcomeFailed
	}

	if room.ID == constant.Empty {
		log.Warn().Str("room_id", line.RoomID).Msg("skipping settlement of missing room")

		return 0, outcomeSkipped
	}

	price, err := pricing.Room(room.Price, line.CheckIn, line.CheckOut)
	if err != nil {
		log.Warn().Err(err).Str("room_id", line.RoomID).Msg("skipping settlement of invalid stay")

		return 0, outcomeSkipped
	}

	req := bookingDto.CreateBookingRequest{RoomID: line.RoomID, Guests: line.Guests}

	if err := s.repos.RoomBooking.Insert(ctx, req.ToModel(userID, line.CheckIn, line.CheckOut, price, verified)); err != nil {
		log.Error().Err(err).Str("room_id", line.RoomID).Msg("failed to save settled room booking")

		return 0, outcomeFailed
	}

	return price, outcomeCreated
}

func (s *serviceImpl) settleFacility(ctx context.Context, userID string, verified payment.VerifiedPayment, line cartModel.FacilityLine) (int64, outcome) {
	facility, err := s.repos.Facility.Get(ctx, shared.FilterByID(line.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("facility_id", line.FacilityID).Msg("failed to get facility for settlement")

		return 0, outcomeFailed
	}

	if facility.ID == constant.Empty || !facility.HasSlot(line.TimeSlot) || !facility.OpenOn(line.Date.Weekday()) {
		log.Warn().Str("facility_id", line.FacilityID).Str("time_slot", line.TimeSlot).Msg("skipping settlement of unbookable facility slot")

		return 0, outcomeSkipped
	}

	price := pricing.Facility(facility.Price)
	req := facilityBookingDto.BookFacilityRequest{FacilityID: line.FacilityID, TimeSlot: line.TimeSlot}

	err = s.repos.FacilityBooking.InsertActive(ctx, req.ToModel(userID, line.Date, price, verified))
	if errors.Is(err, facilityBookingRepo.ErrSlotTaken) {
		log.Warn().
			Str("facility_id", line.FacilityID).
			Str("date", line.Date.Format(constant.DateOnlyFormat)).
			Str("time_slot", line.TimeSlot).
			Msg("facility slot taken during settlement")

		return 0, outcomeConflict
	}

	if err != nil {
		log.Error().Err(err).Str("facility_id", line.FacilityID).Msg("failed to save settled facility booking")

		return 0, outcomeFailed
	}

	return price, outcomeCreated
}

func (s *serviceImpl) settleFood(ctx context.Context, userID string, verified payment.VerifiedPayment, line cartModel.FoodLine) (int64, outcome) {
	food, err := s.repos.Food.Get(ctx, shared.FilterByID(line.FoodID, foodModel.FieldID, foodModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("food_id", line.FoodID).Msg("failed to get food item for settlement")

		return 0, outcomeFailed
	}

	if !food.Orderable() {
		log.Warn().Str("food_id", line.FoodID).Msg("skipping settlement of unavailable food item")

		return 0, outcomeSkipped
	}

	order, items := orderDto.BuildOrder(userID, []orderModel.Item{{
		FoodID:   line.FoodID,
		Quantity: line.Quantity,
		Price:    pricing.Food(food.Price, line.Quantity),
	}}, verified)

	if err := s.repos.Order.Create(ctx, order, items); err != nil {
		log.Error().Err(err).Str("food_id", line.FoodID).Msg("failed to save settled food order")

		return 0, outcomeFailed
	}

	return order.TotalPrice, outcomeCreated
}

func (s *serviceImpl) invalidate(ctx context.Context, touched map[string]bool) {
	prefixes := map[string]string{
		constant.KindRoom:     constant.CachePrefixRoom,
		constant.KindFacility: constant.CachePrefixFacility,
		constant.KindFood:     constant.CachePrefixFood,
	}

	for kind, prefix := range prefixes {
		if touched[kind] {
			shared.InvalidateCaches(ctx, s.cache, prefix)
		}
	}
}

func (s *serviceImpl) publish(ctx context.Context, userID string, verified payment.VerifiedPayment, res model.Result) {
	event := model.CompletedEvent{
		Type:      model.EventSettlementCompleted,
		UserID:    userID,
		PaymentID: verified.PaymentID(),
		OrderID:   verified.OrderID(),
		Result:    res,
		SettledAt: timezone.Now(),
	}

	if err := s.publisher.Publish(ctx, kafka.Message{Key: verified.PaymentID(), Value: event}); err != nil {
		log.Error().Err(err).Str("payment_id", verified.PaymentID()).Msg("failed to publish settlement event")
	}
}
