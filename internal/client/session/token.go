package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jcsoftlabs/Yeng-client/internal/common"
)

// tokenUsable judges whether a persisted bearer token is still worth
// restoring. Tokens that parse as JWTs with an exp claim in the past are
// rejected; opaque tokens and claims we cannot read are accepted as-is,
// since the backend stays authoritative and will answer 401 if needed.
// No signature verification happens here: the client holds no key.
func tokenUsable(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("%w (exp %s)", common.ErrTokenExpired, exp.Format(time.RFC3339))
	}
	return nil
}
