package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Name: "  Asha Rao ", Email: "Asha@Example.com", Password: "secret-pass"}

	user := req.ToUserModel("hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, user.ID, user.CreatedBy)
}
