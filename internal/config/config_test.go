package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "ledger.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 3, cfg.Validation.TaskMinLength)
	assert.Equal(t, 200, cfg.Validation.TaskMaxLength)
	assert.Equal(t, 500, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, float64(8), cfg.Ledger.OvertimeThreshold)
	assert.Equal(t, []string{"manager", "admin"}, cfg.Ledger.ApproverRoles)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("WF_DB_DIR", "/tmp/wf-test")
	t.Setenv("WF_DB_FILENAME", "test.db")
	t.Setenv("WF_DB_QUERY_TIMEOUT", "30s")
	t.Setenv("WF_VALIDATION_TASK_MIN", "5")
	t.Setenv("WF_LEDGER_OVERTIME_THRESHOLD", "7.5")
	t.Setenv("WF_LEDGER_APPROVER_ROLES", "hr, admin")
	t.Setenv("WF_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wf-test", cfg.Database.Dir)
	assert.Equal(t, "test.db", cfg.Database.Filename)
	assert.Equal(t, 30*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5, cfg.Validation.TaskMinLength)
	assert.Equal(t, 7.5, cfg.Ledger.OvertimeThreshold)
	assert.Equal(t, []string{"hr", "admin"}, cfg.Ledger.ApproverRoles)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad query timeout", "WF_DB_QUERY_TIMEOUT", "not-a-duration"},
		{"bad task min", "WF_VALIDATION_TASK_MIN", "abc"},
		{"bad overtime threshold", "WF_LEDGER_OVERTIME_THRESHOLD", "eight"},
		{"bad verbose flag", "WF_APP_VERBOSE", "definitely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := NewConfig()
			assert.Error(t, cfg.LoadFromEnvironment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }},
		{"task max below min", func(c *Config) { c.Validation.TaskMaxLength = 1 }},
		{"negative overtime threshold", func(c *Config) { c.Ledger.OvertimeThreshold = -1 }},
		{"no approver roles", func(c *Config) { c.Ledger.ApproverRoles = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_IsApproverRole(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.IsApproverRole("manager"))
	assert.True(t, cfg.IsApproverRole("Admin"))
	assert.False(t, cfg.IsApproverRole("member"))
	assert.False(t, cfg.IsApproverRole(""))
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	threshold := 9.0
	taskMin := 4
	loader := NewLoader()

	cfg, err := loader.LoadWithOverrides(&Overrides{
		OvertimeThreshold: &threshold,
		TaskMinLength:     &taskMin,
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, cfg.Ledger.OvertimeThreshold)
	assert.Equal(t, 4, cfg.Validation.TaskMinLength)
}
