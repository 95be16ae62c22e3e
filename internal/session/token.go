package session

import (
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
)

// Decode splits a token into its header and payload without verifying the
// signature. It is pure and never fails the caller: malformed input (wrong
// segment count, bad base64, bad JSON) yields nil plus a warning diagnostic.
//
// Decoding proves nothing about authenticity. Claims extracted here are for
// display and expiry bookkeeping only; authorization-sensitive decisions rest
// on the backend accepting the token.
func Decode(token string, logger *zap.Logger) *models.DecodedToken {
	if logger == nil {
		logger = zap.NewNop()
	}
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		logger.Warn("malformed token", zap.Error(err))
		return nil
	}

	decoded := &models.DecodedToken{Header: parsed.Header}
	if v, ok := claims["username"].(string); ok {
		decoded.Payload.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		decoded.Payload.Role = v
	}
	if v, ok := claims["sub"].(string); ok {
		decoded.Payload.Sub = v
	}
	if v, ok := claims["exp"].(float64); ok {
		decoded.Payload.Exp = v
	}
	if v, ok := claims["iat"].(float64); ok {
		decoded.Payload.Iat = v
	}
	return decoded
}

// expired reports whether the decoded payload's exp claim (seconds since
// epoch) is at or before now. A missing exp cannot prove freshness: the
// default policy treats it as non-expiring, since a backend that omits expiry
// intends indefinite validity; requireExp flips that to fail-closed.
func expired(decoded *models.DecodedToken, nowUnix int64, requireExp bool) bool {
	if decoded == nil {
		return true
	}
	if decoded.Payload.Exp == 0 {
		return requireExp
	}
	return nowUnix >= int64(decoded.Payload.Exp)
}
