package auth

import (
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Get("/check", handler.Check)
		r.Get("/profile", handler.Profile)
		r.Put("/password", handler.ChangePassword)
	})
}

// Register handles guest registration
// @Summary Register a new guest
// @Description Create a guest account and return a token pair for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.LoginResponse] "Guest registered"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles user login
// @Summary Login a user
// @Description Login a user with the provided credentials.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh user token
// @Description Exchange a refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Tokens refreshed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Check reports whether the caller's token is valid
// @Summary Check authentication
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.CheckResponse]
// @Failure 401 {object} response.Error
// @Router /v1/auth/check [get]
// @Security BearerAuth
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Check")
	defer scope.End()

	res, err := handler.service.Check(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Profile returns the signed-in user
// @Summary Get profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/auth/profile [get]
// @Security BearerAuth
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profile")
	defer scope.End()

	res, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword updates the signed-in user's password
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
