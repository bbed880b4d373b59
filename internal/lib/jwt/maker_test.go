package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       "b2f4d17e-5a90-4f3a-9a1e-111111111111",
		Phone:    "+5351525354",
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}
}

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewMaker("test-secret", 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	tests := []struct {
		name      string
		tokenType string
	}{
		{name: "access token", tokenType: TokenTypeAccess},
		{name: "refresh token", tokenType: TokenTypeRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStr, err := maker.GenerateToken(user, tt.tokenType)
			require.NoError(t, err)
			require.NotEmpty(t, tokenStr)

			claims, err := maker.ParseToken(tokenStr, tt.tokenType)
			require.NoError(t, err)

			assert.Equal(t, user.ID, claims.Subject)
			assert.Equal(t, user.Phone, claims.Phone)
			assert.Equal(t, user.Roles, claims.Roles)
			assert.Equal(t, tt.tokenType, claims.TokenType)
		})
	}
}

func TestMaker_ParseToken_TypeMismatch(t *testing.T) {
	maker := NewMaker("test-secret", 15*time.Minute, 7*24*time.Hour)

	accessToken, err := maker.GenerateToken(testUser(), TokenTypeAccess)
	require.NoError(t, err)

	_, err = maker.ParseToken(accessToken, TokenTypeRefresh)
	assert.True(t, errors.Is(err, apperr.ErrTokenInvalid))
}

func TestMaker_ParseToken_Expired(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute, -time.Minute)

	tokenStr, err := maker.GenerateToken(testUser(), TokenTypeAccess)
	require.NoError(t, err)

	_, err = maker.ParseToken(tokenStr, TokenTypeAccess)
	assert.True(t, errors.Is(err, apperr.ErrTokenExpired))
}

func TestMaker_ParseToken_WrongSecret(t *testing.T) {
	maker := NewMaker("test-secret", 15*time.Minute, 7*24*time.Hour)
	forged := NewMaker("other-secret", 15*time.Minute, 7*24*time.Hour)

	tokenStr, err := forged.GenerateToken(testUser(), TokenTypeAccess)
	require.NoError(t, err)

	_, err = maker.ParseToken(tokenStr, TokenTypeAccess)
	assert.True(t, errors.Is(err, apperr.ErrTokenInvalid))
}

func TestMaker_ParseToken_Garbage(t *testing.T) {
	maker := NewMaker("test-secret", 15*time.Minute, 7*24*time.Hour)

	_, err := maker.ParseToken("not.a.token", TokenTypeAccess)
	assert.True(t, errors.Is(err, apperr.ErrTokenInvalid))
}
