package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseJWTPayload decodes the claims of a JWT without verifying it. The
// client trusts the token at face value; verification is the server's
// responsibility. Returns nil for any malformed input.
func ParseJWTPayload(token string) map[string]interface{} {
	if token == "" {
		return nil
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}
	return claims
}

// expired reports whether a numeric "exp" claim (Unix seconds) is in the
// past. A payload without exp is treated as valid indefinitely.
func expired(claims map[string]interface{}, now time.Time) bool {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return !now.Before(time.Unix(int64(exp), 0))
}

// NewUnsignedToken constructs an alg-"none" token purely client-side for
// demo and offline flows. It is explicitly not a security mechanism; the
// authenticated flows only ever carry server-issued tokens.
func NewUnsignedToken(claims map[string]interface{}, ttl time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"exp": time.Now().Add(ttl).Unix(),
	}
	for k, v := range claims {
		if k == "exp" {
			continue
		}
		mapClaims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, mapClaims)
	return token.SignedString(jwt.UnsafeAllowNoneSignatureType)
}
