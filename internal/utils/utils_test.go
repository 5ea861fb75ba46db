package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("t-rex", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "t-rex"))
	assert.False(t, VerifyPassword(hash, "raptor"))
	assert.False(t, VerifyPassword("", "t-rex"))
}

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("secret", "curator", RoleAdmin, 15)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "curator", claims["sub"])
	assert.Equal(t, RoleAdmin, claims["role"])
}
