package middleware

import (
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/user_agent"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens the request span and tags it with the client's browser and platform.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		agent := user_agent.New(a.getUA(r))
		browser, version := agent.Browser()

		scope.SetAttributes(map[string]any{
			"app.name":            a.config.App.Name,
			"http.path":           r.URL.Path,
			"http.method":         r.Method,
			"http.host":           r.Host,
			"http.source":         a.getClientIP(r),
			"http.user_agent":     agent.UA(),
			"http.client.browser": browser + " " + version,
			"http.client.os":      agent.OS(),
			"http.client.mobile":  agent.Mobile(),
			"http.client.bot":     agent.Bot(),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{"http.status_code": ww.Status()}
		if rctx := chi.RouteContext(ctx); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.AddEvent(constant.ResponseErrorServer)
		}
	})
}
