package middleware

import (
	"context"
	"errors"
	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enabled       bool
		mock          func(m *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			mock:     func(_ *cacheMocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
		{
			name:    "first request in window",
			enabled: true,
			mock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name:    "over the limit",
			enabled: true,
			mock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 3

						return nil
					})
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:    "cache unavailable passes through",
			enabled: true,
			mock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := cacheMocks.NewMockRedisCache(ctrl)
			tt.mock(store)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			mw := NewAppMiddleware(otelMocks.NewOtel(), cfg, store)
			handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.Header.Set(constant.RequestHeaderUserAgent, chromeUA)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestGetClientIP(t *testing.T) {
	mw := &appMiddleware{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", mw.getClientIP(req))

	req.Header.Set(constant.RequestHeaderRealIP, "198.51.100.2")
	assert.Equal(t, "198.51.100.2", mw.getClientIP(req))

	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", mw.getClientIP(req))
}

func TestClientFamily(t *testing.T) {
	assert.Equal(t, unknownClient, clientFamily(unknownClient))
	assert.Contains(t, clientFamily(chromeUA), "Chrome/Linux")
	assert.Contains(t, clientFamily("Googlebot/2.1 (+http://www.google.com/bot.html)"), "bot:")
}
