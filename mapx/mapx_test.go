package mapx_test

import (
	"testing"

	"github.com/axent-pl/securitycontext/mapx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Lookup(t *testing.T) {
	data := map[string]any{
		"sub":        "subject-id",
		"permission": []any{"read", "write"},
		"realm_access": map[string]any{
			"roles": []any{"admin", "user"},
		},
		"https://acme.com/claims": map[string]any{
			"tenant": "acme",
		},
		"nothing": nil,
	}
	tests := []struct {
		name      string
		root      any
		path      string
		want      any
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "field",
			root:      data,
			path:      ".sub",
			want:      "subject-id",
			wantFound: true,
		},
		{
			name:      "bare field",
			root:      data,
			path:      "sub",
			want:      "subject-id",
			wantFound: true,
		},
		{
			name:      "nested field",
			root:      data,
			path:      ".realm_access.roles",
			want:      []any{"admin", "user"},
			wantFound: true,
		},
		{
			name:      "index",
			root:      data,
			path:      ".permission[0]",
			want:      "read",
			wantFound: true,
		},
		{
			name:      "negative index",
			root:      data,
			path:      ".permission[-1]",
			want:      "write",
			wantFound: true,
		},
		{
			name:      "index out of range",
			root:      data,
			path:      ".permission[5]",
			wantFound: false,
		},
		{
			name:      "quoted key",
			root:      data,
			path:      `.["https://acme.com/claims"].tenant`,
			want:      "acme",
			wantFound: true,
		},
		{
			name:      "single quoted key",
			root:      data,
			path:      `['https://acme.com/claims']['tenant']`,
			want:      "acme",
			wantFound: true,
		},
		{
			name:      "explicit null",
			root:      data,
			path:      ".nothing",
			want:      nil,
			wantFound: true,
		},
		{
			name:      "missing field",
			root:      data,
			path:      ".missing",
			wantFound: false,
		},
		{
			name:      "field of a string",
			root:      data,
			path:      ".sub.inner",
			wantFound: false,
		},
		{
			name:      "root",
			root:      "plain",
			path:      ".",
			want:      "plain",
			wantFound: true,
		},
		{
			name:      "named map type",
			root:      jwt.MapClaims{"permission": "read"},
			path:      ".permission",
			want:      "read",
			wantFound: true,
		},
		{
			name:      "typed slice",
			root:      map[string]any{"permission": []string{"read"}},
			path:      ".permission[0]",
			want:      "read",
			wantFound: true,
		},
		{
			name:    "recursive descent is not supported",
			root:    data,
			path:    "..sub",
			wantErr: true,
		},
		{
			name:    "empty brackets",
			root:    data,
			path:    ".permission[]",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			root:    data,
			path:    `.["sub]`,
			wantErr: true,
		},
		{
			name:    "space inside path",
			root:    data,
			path:    ".realm_access roles",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := mapx.Parse(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, found := p.Lookup(tt.root)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPath_String(t *testing.T) {
	p := mapx.MustParse(".realm_access.roles")
	assert.Equal(t, ".realm_access.roles", p.String())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { mapx.MustParse("..") })
}
