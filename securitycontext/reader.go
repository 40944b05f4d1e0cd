package securitycontext

import (
	"context"
	"fmt"
	"reflect"

	"github.com/axent-pl/securitycontext/claims"
	"github.com/axent-pl/securitycontext/common"
	"github.com/axent-pl/securitycontext/common/logx"
	"github.com/axent-pl/securitycontext/config"
	"github.com/axent-pl/securitycontext/mapx"
	"github.com/google/uuid"
)

// Anonymous is the user name reported for unauthenticated requests.
const Anonymous = "anonymous"

// Reader extracts identity and authorization data from the authentication
// attached to a context. It holds no per-request state.
type Reader struct {
	securityEnabled bool
	tokenKey        string
	subjectPath     mapx.Path
	permissionPath  mapx.Path
	newID           func() uuid.UUID
}

type Option func(*Reader)

// WithIDGenerator sets the source of user ids handed out while security is
// disabled. Defaults to uuid.New.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(r *Reader) {
		if f != nil {
			r.newID = f
		}
	}
}

func New(cfg config.Config, opts ...Option) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Reader{
		securityEnabled: cfg.SecurityEnabled,
		tokenKey:        cfg.TokenDetailsKey,
		subjectPath:     mapx.MustParse(cfg.SubjectClaim),
		permissionPath:  mapx.MustParse(cfg.PermissionClaim),
		newID:           uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Reader) log() logx.Logger {
	return logx.With("component", "securitycontext")
}

func (r *Reader) UserName(ctx context.Context) string {
	authentication, ok := common.AuthenticationFromContext(ctx)
	if !ok {
		r.log().Debug("request not authenticated, no user name available", "context", ctx)
		return Anonymous
	}
	if isNil(authentication.Principal) {
		r.log().Debug("authentication carries no principal", "context", ctx)
		return Anonymous
	}
	switch p := authentication.Principal.(type) {
	case common.UserDetails:
		return p.Username()
	case string:
		return p
	default:
		r.log().Debug("user details not found in authentication", "context", ctx, "principal", fmt.Sprintf("%T", p))
		return Anonymous
	}
}

// isNil reports whether p is nil or a nil pointer wrapped in an interface.
func isNil(p common.Principal) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// UserRoles is UserAuthorities; roles and authorities are not told apart.
func (r *Reader) UserRoles(ctx context.Context) map[string]struct{} {
	return r.UserAuthorities(ctx)
}

// UserAuthorities returns the set of authorities granted to the caller,
// empty when the request is not authenticated.
func (r *Reader) UserAuthorities(ctx context.Context) map[string]struct{} {
	authorities := make(map[string]struct{})
	authentication, ok := common.AuthenticationFromContext(ctx)
	if !ok {
		return authorities
	}
	for _, a := range authentication.Authorities {
		authorities[a] = struct{}{}
	}
	return authorities
}

// Claims decodes the token kept in the authentication details. It returns
// nil when there is no authentication, no token or the payload is malformed.
func (r *Reader) Claims(ctx context.Context) claims.Claims {
	authentication, ok := common.AuthenticationFromContext(ctx)
	if !ok {
		r.log().Debug("request not authenticated, no claims available", "context", ctx)
		return nil
	}
	token, ok := authentication.DetailString(r.tokenKey)
	if !ok {
		r.log().Debug("no token in authentication details", "context", ctx, "key", r.tokenKey)
		return nil
	}
	c, err := claims.Decode(token)
	if err != nil {
		r.log().Error("could not decode token claims", "context", ctx, "error", err)
		return nil
	}
	r.log().Debug("decoded token claims", "context", ctx, "claims", len(c))
	return c
}

// UserID returns the subject claim. While security is disabled every call
// returns a new random id instead.
func (r *Reader) UserID(ctx context.Context) (string, bool) {
	if !r.securityEnabled {
		id := r.newID().String()
		r.log().Warn("security disabled, returning generated user id", "context", ctx, "id", id)
		return id, true
	}
	c := r.Claims(ctx)
	if c == nil {
		return "", false
	}
	sub, ok := c.String(r.subjectPath)
	if !ok {
		r.log().Debug("subject claim missing or not a string", "context", ctx, "claim", r.subjectPath.String())
		return "", false
	}
	return sub, true
}

// UserUUID parses UserID. Absent, empty and malformed ids report false.
func (r *Reader) UserUUID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := r.UserID(ctx)
	if !ok || id == "" {
		return uuid.Nil, false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		r.log().Debug("user id is not a uuid", "context", ctx, "error", err)
		return uuid.Nil, false
	}
	return u, true
}

// Permissions returns the permission claim as a list. A single string
// becomes a one-element list. The result is never nil.
func (r *Reader) Permissions(ctx context.Context) []string {
	c := r.Claims(ctx)
	if c == nil {
		return []string{}
	}
	v := c.Value(r.permissionPath)
	switch v.Kind {
	case claims.KindAbsent, claims.KindString, claims.KindList:
		return v.List()
	default:
		r.log().Error("could not extract permissions from token", "context", ctx, "claim", r.permissionPath.String(), "type", fmt.Sprintf("%T", v.Raw))
		return []string{}
	}
}
