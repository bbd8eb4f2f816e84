package middleware

import (
	"errors"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/mssola/user_agent"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownClient     = "unknown"
)

// RateLimit counts requests per client in a fixed window kept in the cache. When the
// cache cannot answer, requests pass through uncounted.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limits := a.config.App.RateLimiter
			if !limits.Enable || limits.MaxRequests <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), clientFamily(a.getUA(r)))

			var count int

			err := a.cache.Get(ctx, key, &count)

			switch {
			case errors.Is(err, cache.Nil):
				count = 1
			case err != nil:
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			default:
				count++
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limits.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if count > limits.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(ctx, key, count, limits.WindowSeconds); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter failed to record request")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		return unknownClient
	}

	return ua
}

// getClientIP reads the address chi's RealIP middleware resolved, without the port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}

// clientFamily groups user agents by browser and platform so minor version bumps
// share a bucket. Bots always share one bucket per name.
func clientFamily(ua string) string {
	if ua == unknownClient {
		return ua
	}

	agent := user_agent.New(ua)
	browser, _ := agent.Browser()

	if agent.Bot() {
		return "bot:" + browser
	}

	return browser + "/" + agent.OS()
}
