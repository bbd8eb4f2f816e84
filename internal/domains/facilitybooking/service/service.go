package service

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/payment"
	"hotel/internal/domains/cart/pricing"
	facilityModel "hotel/internal/domains/facility/model"
	facilityRepo "hotel/internal/domains/facility/repository"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/internal/domains/facilitybooking/model/dto"
	"hotel/internal/domains/facilitybooking/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

type FacilityBooking interface {
	Book(ctx context.Context, req dto.BookFacilityRequest) (dto.FacilityBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilityBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	ExpirePending(ctx context.Context, before time.Time) error
}

type serviceImpl struct {
	repo         repository.FacilityBooking
	facilityRepo facilityRepo.Facility
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.FacilityBooking, facilityRepo facilityRepo.Facility, cfg *config.Config, otel otel.Otel) FacilityBooking {
	return &serviceImpl{
		repo:         repo,
		facilityRepo: facilityRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookFacilityRequest) (res dto.FacilityBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	date, err := req.ParseDate()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	facility, err := s.facilityRepo.Get(ctx, shared.FilterByID(req.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if !facility.HasSlot(req.TimeSlot) {
		return res, failure.BadRequestFromString("time slot is not offered by this facility") // nolint:wrapcheck
	}

	if !facility.OpenOn(date.Weekday()) {
		return res, failure.BadRequestFromString("facility is closed on " + date.Weekday().String()) // nolint:wrapcheck
	}

	booking := req.ToModel(user, date, pricing.Facility(facility.Price), payment.VerifiedPayment{})

	err = s.repo.InsertActive(ctx, booking)
	if errors.Is(err, repository.ErrSlotTaken) {
		log.Warn().Str("facility_id", req.FacilityID).Str("date", req.Date).Str("time_slot", req.TimeSlot).Msg("facility slot already booked")

		return res, failure.SlotConflict("time slot is already booked") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create facility booking")

		return res, fmt.Errorf("failed to create facility booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilityBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facility bookings")

		return res, fmt.Errorf("failed to count facility bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility bookings")

		return res, fmt.Errorf("failed to get facility bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// UpdateStatus moves a booking through its lifecycle. Re-activating a cancelled
// booking whose slot has since been taken fails with a slot conflict.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility booking")

		return fmt.Errorf("failed to get facility booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("facility booking not found") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, user), filter)
	if errors.Is(err, repository.ErrSlotTaken) {
		return failure.SlotConflict("time slot is already held by another booking") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update facility booking status")

		return fmt.Errorf("failed to update facility booking status: %w", err)
	}

	return nil
}

func (s *serviceImpl) ExpirePending(ctx context.Context, before time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpirePending")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ExpirePending(ctx, before); err != nil {
		log.Error().Err(err).Msg("failed to expire pending facility bookings")

		return fmt.Errorf("failed to expire pending facility bookings: %w", err)
	}

	return nil
}
