package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestValidator(t *testing.T) *JWTValidator {
	t.Helper()
	v, err := NewJWTValidator(JWTConfig{
		SecretKey: testSecret,
		Issuer:    "memory-gateway",
		Audience:  []string{"memory-api"},
	})
	require.NoError(t, err)
	return v
}

func newTestGenerator(ttl time.Duration) *JWTGenerator {
	return NewJWTGenerator(testSecret, "memory-gateway", []string{"memory-api"}, ttl)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	validator := newTestValidator(t)
	token, err := newTestGenerator(time.Hour).GenerateToken("user_123", "u@example.com", []string{"authenticated"})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, []string{"authenticated"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenStripsBearerPrefix(t *testing.T) {
	validator := newTestValidator(t)
	token, err := newTestGenerator(time.Hour).GenerateToken("user_123", "", nil)
	require.NoError(t, err)

	claims, err := validator.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
}

func TestValidateTokenExpired(t *testing.T) {
	validator := newTestValidator(t)
	token, err := newTestGenerator(-time.Minute).GenerateToken("user_123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	validator := newTestValidator(t)
	forged := NewJWTGenerator("other-secret", "memory-gateway", []string{"memory-api"}, time.Hour)
	token, err := forged.GenerateToken("user_123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	validator := newTestValidator(t)
	generator := NewJWTGenerator(testSecret, "someone-else", []string{"memory-api"}, time.Hour)
	token, err := generator.GenerateToken("user_123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateTokenWrongAudience(t *testing.T) {
	validator := newTestValidator(t)
	generator := NewJWTGenerator(testSecret, "memory-gateway", []string{"other-api"}, time.Hour)
	token, err := generator.GenerateToken("user_123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateTokenMissing(t *testing.T) {
	validator := newTestValidator(t)

	_, err := validator.ValidateToken("   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &UserContext{UserID: "user_123", SessionID: "sess_1"}
	ctx := SetUserInContext(context.Background(), user)

	got, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetUserFromContextMissing(t *testing.T) {
	_, err := GetUserFromContext(context.Background())
	assert.Error(t, err)
}
