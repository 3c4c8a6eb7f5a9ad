package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_HMAC(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-at-least-32-chars-long!!",
		Issuer:     "debt-manager",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	t.Run("round-trips claims", func(t *testing.T) {
		token, err := svc.GenerateToken("seller-001", RoleSeller)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "seller-001", claims.UserID)
		assert.Equal(t, RoleSeller, claims.Role)
		assert.Equal(t, "debt-manager", claims.Issuer)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := svc.GenerateToken("seller-001", RoleSeller)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{Secret: "another-secret-entirely-............"})
		require.NoError(t, err)

		token, err := other.GenerateToken("seller-001", RoleSeller)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

func TestClaimsRoles(t *testing.T) {
	c := Claims{Role: RoleAdmin}
	assert.True(t, c.HasRole(RoleAdmin))
	assert.False(t, c.HasRole(RoleSeller))
	assert.True(t, c.HasAnyRole(RoleSeller, RoleAdmin))
	assert.True(t, c.IsStaff())
	assert.False(t, Claims{Role: RoleSeller}.IsStaff())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
