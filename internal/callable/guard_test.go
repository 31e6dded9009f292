package callable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		identity     *Identity
		requireAdmin bool
		wantKind     Kind
	}{
		{
			name:     "nil identity fails unauthenticated",
			identity: nil,
			wantKind: KindUnauthenticated,
		},
		{
			name:         "nil identity fails unauthenticated even for admin procedures",
			identity:     nil,
			requireAdmin: true,
			wantKind:     KindUnauthenticated,
		},
		{
			name:         "non-admin identity fails permission denied",
			identity:     &Identity{Subject: "u1", Admin: false},
			requireAdmin: true,
			wantKind:     KindPermissionDenied,
		},
		{
			name:         "admin identity passes admin requirement",
			identity:     &Identity{Subject: "u1", Admin: true},
			requireAdmin: true,
		},
		{
			name:     "any identity passes without admin requirement",
			identity: &Identity{Subject: "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.requireAdmin)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}
