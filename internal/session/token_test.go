package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeRoundTrip(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := signToken(t, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"sub":      "42",
		"exp":      exp,
	})

	decoded := Decode(token, zap.NewNop())
	require.NotNil(t, decoded)
	assert.Equal(t, "admin", decoded.Payload.Username)
	assert.Equal(t, "admin", decoded.Payload.Role)
	assert.Equal(t, "42", decoded.Payload.Sub)
	assert.Equal(t, float64(exp), decoded.Payload.Exp)
	assert.Equal(t, "HS256", decoded.Header["alg"])
}

func TestDecodeMalformed(t *testing.T) {
	assert.Nil(t, Decode("", zap.NewNop()))
	assert.Nil(t, Decode("not-a-token", zap.NewNop()))
	assert.Nil(t, Decode("only.two", zap.NewNop()))
	assert.Nil(t, Decode("!!!.???.###", zap.NewNop()))
	// Valid base64 segments that do not decode to JSON.
	assert.Nil(t, Decode("YWJj.YWJj.YWJj", zap.NewNop()))
}

func TestExpired(t *testing.T) {
	now := time.Now().Unix()

	past := Decode(signToken(t, jwt.MapClaims{"exp": now - 60}), zap.NewNop())
	future := Decode(signToken(t, jwt.MapClaims{"exp": now + 3600}), zap.NewNop())
	noExp := Decode(signToken(t, jwt.MapClaims{"username": "x"}), zap.NewNop())

	assert.True(t, expired(past, now, false))
	assert.False(t, expired(future, now, false))

	// Missing exp: permissive by default, fail-closed when required.
	assert.False(t, expired(noExp, now, false))
	assert.True(t, expired(noExp, now, true))

	assert.True(t, expired(nil, now, false))
}
