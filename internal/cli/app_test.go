package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-forge/internal/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Role
	}{
		{"manager", domain.RoleManager},
		{"Manager", domain.RoleManager},
		{"  ADMIN  ", domain.RoleAdmin},
		{"hr", domain.RoleHR},
		{"client", domain.RoleClient},
		{"member", domain.RoleMember},
		{"", domain.RoleMember},
		{"superuser", domain.RoleMember},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseRole(tt.input), "parseRole(%q)", tt.input)
	}
}

func TestParseKeyValueArgs(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result, err := parseKeyValueArgs([]string{"status=pending", "description=release 1.4"})
		require.NoError(t, err)
		assert.Equal(t, "pending", result["status"])
		assert.Equal(t, "release 1.4", result["description"])
	})

	t.Run("empty value allowed", func(t *testing.T) {
		result, err := parseKeyValueArgs([]string{"description="})
		require.NoError(t, err)
		assert.Equal(t, "", result["description"])
	})

	t.Run("missing equals", func(t *testing.T) {
		_, err := parseKeyValueArgs([]string{"pending"})
		assert.Error(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := parseKeyValueArgs([]string{"=pending"})
		assert.Error(t, err)
	})
}

func TestApp_RequireActor(t *testing.T) {
	app, _ := setupTestApp(t)

	actor, err := app.RequireActor()
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.ID)
	assert.Equal(t, domain.RoleMember, actor.Role)

	app.SetActor("", "")
	_, err = app.RequireActor()
	assert.Error(t, err)
}
