package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

// Auth authenticates callers, either by bearer token or by internal API key.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role enforces the per-route role lists from the permissions file.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// route resolves the matched chi pattern and its permission entry.
func (m *authRoleImpl) route(request *http.Request) (string, permissions.Permission) {
	path := request.URL.Path

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
			path = pattern
		}
	}

	if m.permission == nil {
		return path, permissions.Permission{}
	}

	return path, m.permission.FindPermissions(path, request.Method)
}

func internalCall(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// Auth validates the bearer access token and stores its claims on the request context.
// Internal calls and routes marked skip pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path, permission := m.route(request)
		if internalCall(ctx) || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("path", path).Msg("access token missing subject claims")
			reject(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

// RBAC checks the authenticated role against the route's allowed roles.
// It must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if internalCall(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		_, permission := m.route(request)
		if m.permission.Skip || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !slices.Contains(permission.Permissions, userRole) {
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey marks requests carrying the internal API key so Auth and RBAC let them through.
// A wrong key is rejected outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, true)))
	})
}
