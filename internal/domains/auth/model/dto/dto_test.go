package dto_test

import (
	"testing"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Email: "  Ana@Example.com ", Password: "password", FullName: stringPtr("Ana Maria")}

	user := req.ToUserModel(constant.ContextGuest, "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
}

func TestRegisterRequest_ToClientModel(t *testing.T) {
	tests := []struct {
		name     string
		fullName *string
		want     string
	}{
		{name: "named after the full name", fullName: stringPtr(" Ana Maria "), want: "Ana Maria"},
		{name: "falls back to the email", fullName: nil, want: "ana@example.com"},
		{name: "blank full name", fullName: stringPtr("   "), want: "ana@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RegisterRequest{Email: "ana@example.com", FullName: tt.fullName}
			user := req.ToUserModel(constant.ContextGuest, "hashed")

			client := req.ToClientModel(user)

			assert.Equal(t, tt.want, client.Name)
			assert.Equal(t, user.ID, *client.UserID)
			assert.Zero(t, client.LoyaltyPoints)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
