package jwt_test

import (
	"context"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel/mocks"
	"hotel/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, mocks.NewOtel())
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "user-1", "guest@hotel.test", constant.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, constant.RoleAdmin, claims.Role)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, "not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "user-1", "guest@hotel.test", constant.RoleUser)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)
}
