package common

import "context"

type authenticationContextKey struct{}

func WithAuthentication(ctx context.Context, authentication *Authentication) context.Context {
	return context.WithValue(ctx, authenticationContextKey{}, authentication)
}

// AuthenticationFromContext returns the authentication attached to ctx. A nil
// context, a missing value or a nil *Authentication all mean unauthenticated.
func AuthenticationFromContext(ctx context.Context) (*Authentication, bool) {
	if ctx == nil {
		return nil, false
	}
	authentication, ok := ctx.Value(authenticationContextKey{}).(*Authentication)
	if !ok || authentication == nil {
		return nil, false
	}
	return authentication, true
}
