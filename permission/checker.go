package permission

import (
	"context"
	"slices"

	"github.com/axent-pl/securitycontext/securitycontext"
)

type Checker interface {
	HasPermission(ctx context.Context, permission string) bool
}

// PermissionSource yields the caller's normalized permission list.
// *securitycontext.Reader implements it.
type PermissionSource interface {
	Permissions(ctx context.Context) []string
}

var _ PermissionSource = (*securitycontext.Reader)(nil)

// AccessTokenChecker answers permission checks against the permission claim
// of the caller's access token.
type AccessTokenChecker struct {
	Source PermissionSource
}

var _ Checker = AccessTokenChecker{}

func NewAccessTokenChecker(source PermissionSource) AccessTokenChecker {
	return AccessTokenChecker{Source: source}
}

// HasPermission reports whether permission is granted. Matching is exact and
// case-sensitive. An empty permission is never granted and the context is
// not consulted for it.
func (c AccessTokenChecker) HasPermission(ctx context.Context, permission string) bool {
	if permission == "" || c.Source == nil {
		return false
	}
	return slices.Contains(c.Source.Permissions(ctx), permission)
}

// HasAnyPermission reports whether at least one of permissions is granted.
func (c AccessTokenChecker) HasAnyPermission(ctx context.Context, permissions ...string) bool {
	granted := c.granted(ctx, permissions)
	for _, p := range permissions {
		if p != "" && slices.Contains(granted, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every one of permissions is granted.
// It is false for an empty argument list.
func (c AccessTokenChecker) HasAllPermissions(ctx context.Context, permissions ...string) bool {
	if len(permissions) == 0 {
		return false
	}
	granted := c.granted(ctx, permissions)
	for _, p := range permissions {
		if p == "" || !slices.Contains(granted, p) {
			return false
		}
	}
	return true
}

func (c AccessTokenChecker) granted(ctx context.Context, permissions []string) []string {
	if len(permissions) == 0 || c.Source == nil {
		return nil
	}
	return c.Source.Permissions(ctx)
}
