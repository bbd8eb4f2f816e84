package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userDto "hotel/internal/domains/user/model/dto"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Check(ctx context.Context) (dto.CheckResponse, error)
	Profile(ctx context.Context) (userDto.UserResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func byEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(email),
				Table:    userModel.TableName,
			},
		},
	}
}

// Register creates a guest account and signs it in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, byEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byEmail(req.Email)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}

	if password.NeedsRehash(user.Password) {
		if rehashed, herr := password.Hash(req.Password); herr == nil {
			lastLogin.Password = rehashed
		}
	}

	if err := s.userRepo.Update(ctx, shared.TransformFields(lastLogin, user.ID), filter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		return failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Check reports the identity the auth middleware placed on the context.
func (s *serviceImpl) Check(ctx context.Context) (res dto.CheckResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	res.Authenticated = true
	res.UserID = userID
	res.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	res.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		return res, failure.Unauthorized("user is not authenticated") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
