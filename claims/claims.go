package claims

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/axent-pl/securitycontext/common"
	"github.com/axent-pl/securitycontext/mapx"
	jwtx "github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload segment of a token.
type Claims map[string]any

// Decode splits a compact JWS and decodes its payload segment. The signature
// is not checked; callers hand in tokens that were already verified when the
// request was authenticated.
func Decode(token string) (Claims, error) {
	if token == "" {
		return nil, common.ErrNoToken
	}

	parser := jwtx.NewParser()
	mapClaims := jwtx.MapClaims{}
	_, parts, err := parser.ParseUnverified(token, mapClaims)
	// an unknown or missing "alg" only matters for verification
	if err != nil && !errors.Is(err, jwtx.ErrTokenUnverifiable) {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedToken, err)
	}

	// a null payload unmarshals into MapClaims without error
	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedToken, err)
	}
	if bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return nil, fmt.Errorf("%w: payload is not a JSON object", common.ErrMalformedToken)
	}

	return Claims(mapClaims), nil
}

func (c Claims) Lookup(path mapx.Path) (any, bool) {
	if c == nil {
		return nil, false
	}
	return path.Lookup(map[string]any(c))
}

// Value decodes the claim at path, see DecodeValue.
func (c Claims) Value(path mapx.Path) Value {
	v, found := c.Lookup(path)
	if !found {
		return Value{Kind: KindAbsent}
	}
	return DecodeValue(v)
}

// String returns the claim at path when it is a non-empty string.
func (c Claims) String(path mapx.Path) (string, bool) {
	v, found := c.Lookup(path)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
