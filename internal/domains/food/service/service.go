package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/food/model"
	"hotel/internal/domains/food/model/dto"
	"hotel/internal/domains/food/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFood    = constant.CachePrefixFood + "get"
	cacheGetAllFood = constant.CachePrefixFood + "gets"
	cacheCountFood  = constant.CachePrefixFood + "count"
	cacheCategories = constant.CachePrefixFood + "categories"
)

type Food interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFoodsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FoodResponse, error)
	Categories(ctx context.Context) (dto.CategoriesResponse, error)
}

type serviceImpl struct {
	repo  repository.Food
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Food, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Food {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFoodsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFood, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food items")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count food items")

		return res, fmt.Errorf("failed to count food items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food items")

		return res, fmt.Errorf("failed to get food items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFood, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count food items")

		return res, fmt.Errorf("failed to count food items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFood, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food item")

		return res, nil
	}

	food, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food item")

		return res, fmt.Errorf("failed to get food item: %w", err)
	}

	if food.ID == constant.Empty {
		return res, failure.NotFound("food item not found") // nolint:wrapcheck
	}

	res.FromModel(food)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Categories(ctx context.Context) (res dto.CategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Categories")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheCategories, &res)
	if err == nil {
		return res, nil
	}

	res.Categories, err = s.repo.Categories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food categories")

		return res, fmt.Errorf("failed to get food categories: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCategories, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food categories to cache")
		}
	}()

	return res, nil
}
