package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	accessToken, payload, err := maker.CreateToken("user-1", "provider", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.Equal(t, "user-1", payload.Subject)
	require.Equal(t, "provider", payload.Role)

	verified, err := maker.VerifyToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", verified.Subject)
	require.Equal(t, "provider", verified.Role)
	require.Equal(t, payload.ID, verified.ID)
}

func TestJWTMakerRejectsShortKey(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	accessToken, _, err := maker.CreateToken("user-1", "user", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(accessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenSignedWithDifferentKey(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	otherMaker, err := NewJWTMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	accessToken, _, err := otherMaker.CreateToken("user-1", "user", time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(accessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}
