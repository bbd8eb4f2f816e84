package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/facility/model"
	"hotel/internal/domains/facility/model/dto"
	"hotel/internal/domains/facility/repository"
	bookingRepo "hotel/internal/domains/facilitybooking/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = constant.CachePrefixFacility + "get"
	cacheGetAllFacility = constant.CachePrefixFacility + "gets"
	cacheCountFacility  = constant.CachePrefixFacility + "count"
)

type Facility interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	AvailableSlots(ctx context.Context, id, date string) (dto.AvailableSlotsResponse, error)
}

type serviceImpl struct {
	repo        repository.Facility
	bookingRepo bookingRepo.FacilityBooking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Facility, bookingRepo bookingRepo.FacilityBooking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facilities")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facility count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFacility, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facility")

		return res, nil
	}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	res.FromModel(facility)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

// AvailableSlots lists the facility's slots on date that no pending or confirmed booking holds,
// in the facility's configured order. A date the facility is closed on, or one that cannot be
// parsed, yields no slots.
func (s *serviceImpl) AvailableSlots(ctx context.Context, id, date string) (res dto.AvailableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.AvailableSlotsResponse{FacilityID: id, Date: date, AvailableSlots: []string{}}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	day, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("unparseable availability date")

		return res, nil
	}

	if !facility.OpenOn(day.Weekday()) {
		return res, nil
	}

	held, err := s.bookingRepo.ActiveSlots(ctx, id, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get held facility slots")

		return res, fmt.Errorf("failed to get held facility slots: %w", err)
	}

	res.AvailableSlots = facility.FreeSlots(held)

	return res, nil
}
