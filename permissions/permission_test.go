package permissions_test

import (
	"net/http"
	"testing"

	"hotel/permissions"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "public catalog with subrouter slash", path: "/v1/rooms/", method: http.MethodGet, wantSkip: true},
		{name: "public room detail", path: "/v1/rooms/{id}", method: http.MethodGet, wantSkip: true},
		{name: "booking for any signed in user", path: "/v1/reservations/book", method: http.MethodPost, wantRoles: []string{"user", "admin", "superadmin"}},
		{name: "room creation is admin only", path: "/v1/rooms/", method: http.MethodPost, wantRoles: []string{"admin", "superadmin"}},
		{name: "dashboard is admin only", path: "/v1/dashboard/stats", method: http.MethodGet, wantRoles: []string{"admin", "superadmin"}},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)

			if tt.wantRoles == nil {
				assert.Empty(t, permission.Permissions)

				return
			}

			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}
