package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the display-only fields peeked from a session token's payload.
// Nothing here is verified; the remote authority stays the source of truth
// for whether the token is actually good.
type Claims struct {
	Subject   string
	UserID    int
	Email     string
	ExpiresAt time.Time
}

// Peek decodes the token payload without verifying its signature.
func Peek(raw string) (Claims, error) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("decode token payload: %w", err)
	}

	mapped, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	claims := Claims{
		Subject: stringClaim(mapped, "sub"),
		Email:   stringClaim(mapped, "email"),
		UserID:  userIDClaim(mapped),
	}

	if expiry, err := mapped.GetExpirationTime(); err == nil && expiry != nil {
		claims.ExpiresAt = expiry.Time
	}

	return claims, nil
}

// userIDClaim checks the id fields backends have been seen putting the user
// id under, in order of preference.
func userIDClaim(claims jwt.MapClaims) int {
	for _, key := range []string{"userId", "id", "sub", "user_id"} {
		value, ok := claims[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case float64:
			if v > 0 {
				return int(v)
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}

	return 0
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
