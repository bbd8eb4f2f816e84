package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/payment"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/cart/pricing"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	ExpirePending(ctx context.Context, before time.Time) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseStay()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Available {
		return res, failure.BadRequestFromString("room not available") // nolint:wrapcheck
	}

	if room.Capacity > 0 && req.Guests > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("room holds at most %d guests", room.Capacity)) // nolint:wrapcheck
	}

	price, err := pricing.Room(room.Price, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(user, checkIn, checkOut, price, payment.VerifiedPayment{})

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create room booking")

		return res, fmt.Errorf("failed to create room booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings")

		return res, fmt.Errorf("failed to count room bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

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
		log.Error().Err(err).Msg("failed to check if room booking exists")

		return fmt.Errorf("failed to check if room booking exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("room booking not found")

		return failure.NotFound("room booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room booking status")

		return fmt.Errorf("failed to update room booking status: %w", err)
	}

	return nil
}

func (s *serviceImpl) ExpirePending(ctx context.Context, before time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpirePending")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ExpirePending(ctx, before); err != nil {
		log.Error().Err(err).Msg("failed to expire pending room bookings")

		return fmt.Errorf("failed to expire pending room bookings: %w", err)
	}

	return nil
}
