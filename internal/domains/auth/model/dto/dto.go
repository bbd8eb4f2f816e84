package dto

import (
	"hotel/infras/jwt"
	userModel "hotel/internal/domains/user/model"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ToUserModel always creates a guest account. Administrators are provisioned out of band.
func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	id := uuid.NewString()
	return userModel.User{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(r.Email),
		Password: hashedPassword,
		Role:     constant.RoleUser,
		Active:   true,
		Metadata: gModel.NewMetadata(id),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateLastLoginRequest records a login. Password is set only when the stored hash is upgraded.
type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login"`
	Password  string    `db:"password"   json:"-"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password"`
}

// CheckResponse echoes the identity carried by the caller's access token.
type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
}

type ProfileResponse = userDto.UserResponse
