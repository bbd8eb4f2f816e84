package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_GetAll(t *testing.T) {
	rooms := []model.Room{
		{ID: "deluxe", Type: "Deluxe", Price: 1000, Capacity: 2, Available: true},
		{ID: "suite", Type: "Suite", Price: 2500, Capacity: 4, Available: true},
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss loads from repository",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
			},
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, 1, res.TotalPage)
			assert.Len(t, res.Rooms, 2)
			assert.Equal(t, int64(2500), res.Rooms[1].Price)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   error
		wantType  string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "room:get:deluxe", gomock.Any()).Return(nil)
			},
		},
		{
			name: "loaded from repository",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "deluxe", Type: "Deluxe", Price: 1000}, nil)
			},
			wantType: "Deluxe",
		},
		{
			name: "unknown room",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "deluxe")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantType, res.Type)
		})
	}
}
