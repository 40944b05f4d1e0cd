// Package tokentest mints compact tokens for tests of code that reads
// claims. Signatures are real but the key is a fixed test secret.
package tokentest

import (
	"encoding/base64"
	"maps"
	"testing"

	"github.com/axent-pl/securitycontext/common"
	jwtx "github.com/golang-jwt/jwt/v5"
)

var Secret = []byte("tokentest-secret")

// Sign returns payload signed with HS256.
func Sign(t testing.TB, payload map[string]any) string {
	t.Helper()
	claims := jwtx.MapClaims{}
	maps.Copy(claims, payload)
	token, err := jwtx.NewWithClaims(jwtx.SigningMethodHS256, claims).SignedString(Secret)
	if err != nil {
		t.Fatalf("could not sign payload: %v", err)
	}
	return token
}

// Raw assembles a token from literal header and payload JSON, for
// payloads golang-jwt would refuse to produce.
func Raw(header, payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString([]byte(payload)) + "." + enc.EncodeToString([]byte("sig"))
}

// Authentication wraps a signed payload the way an authentication layer
// leaves it in the security context.
func Authentication(t testing.TB, principal common.Principal, payload map[string]any) *common.Authentication {
	t.Helper()
	return &common.Authentication{
		Principal: principal,
		Details:   map[string]any{"tokenValue": Sign(t, payload)},
	}
}
