//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Tokens(t *testing.T) {
	service := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	userID := uuid.New()

	t.Run("success: access token round-trips", func(t *testing.T) {
		token, err := service.GenerateAccessToken(userID, user.RoleProvider)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "provider", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("success: refresh token carries the refresh type", func(t *testing.T) {
		token, err := service.GenerateRefreshToken(userID, user.RoleClient)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("error: token signed with a different secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", 15*time.Minute, 168*time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: expired token is rejected", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
