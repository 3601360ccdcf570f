package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the Work Forge ledger
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Ledger      LedgerConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WF_DB_DIR"`
	Filename       string        `env:"WF_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WF_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WF_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WF_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskMinLength        int `env:"WF_VALIDATION_TASK_MIN"`
	TaskMaxLength        int `env:"WF_VALIDATION_TASK_MAX"`
	DescriptionMaxLength int `env:"WF_VALIDATION_DESCRIPTION_MAX"`
}

// LedgerConfig holds ledger policy configuration
type LedgerConfig struct {
	OvertimeThreshold float64  `env:"WF_LEDGER_OVERTIME_THRESHOLD"`
	ApproverRoles     []string `env:"WF_LEDGER_APPROVER_ROLES"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WF_APP_TIMEOUT"`
	Verbose bool          `env:"WF_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".workforge")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "ledger.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskMinLength:        3,
			TaskMaxLength:        200,
			DescriptionMaxLength: 500,
		},
		Ledger: LedgerConfig{
			OvertimeThreshold: 8,
			ApproverRoles:     []string{"manager", "admin"},
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// IsApproverRole returns true if the given role may approve or reject entries
func (c *Config) IsApproverRole(role string) bool {
	for _, approver := range c.Ledger.ApproverRoles {
		if strings.EqualFold(approver, role) {
			return true
		}
	}
	return false
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WF_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WF_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WF_DB_QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid WF_DB_QUERY_TIMEOUT: %w", err)
		}
		c.Database.QueryTimeout = d
	}
	if timeout := os.Getenv("WF_DB_WRITE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid WF_DB_WRITE_TIMEOUT: %w", err)
		}
		c.Database.WriteTimeout = d
	}
	if perms := os.Getenv("WF_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return fmt.Errorf("invalid WF_DB_DIR_PERMISSIONS: %w", err)
		}
		c.Database.DirPermissions = uint32(p)
	}

	// Validation configuration
	if min := os.Getenv("WF_VALIDATION_TASK_MIN"); min != "" {
		n, err := strconv.Atoi(min)
		if err != nil {
			return fmt.Errorf("invalid WF_VALIDATION_TASK_MIN: %w", err)
		}
		c.Validation.TaskMinLength = n
	}
	if max := os.Getenv("WF_VALIDATION_TASK_MAX"); max != "" {
		n, err := strconv.Atoi(max)
		if err != nil {
			return fmt.Errorf("invalid WF_VALIDATION_TASK_MAX: %w", err)
		}
		c.Validation.TaskMaxLength = n
	}
	if max := os.Getenv("WF_VALIDATION_DESCRIPTION_MAX"); max != "" {
		n, err := strconv.Atoi(max)
		if err != nil {
			return fmt.Errorf("invalid WF_VALIDATION_DESCRIPTION_MAX: %w", err)
		}
		c.Validation.DescriptionMaxLength = n
	}
	// Ledger configuration
	if threshold := os.Getenv("WF_LEDGER_OVERTIME_THRESHOLD"); threshold != "" {
		f, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return fmt.Errorf("invalid WF_LEDGER_OVERTIME_THRESHOLD: %w", err)
		}
		c.Ledger.OvertimeThreshold = f
	}
	if roles := os.Getenv("WF_LEDGER_APPROVER_ROLES"); roles != "" {
		parsed := make([]string, 0)
		for _, role := range strings.Split(roles, ",") {
			if trimmed := strings.TrimSpace(role); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		c.Ledger.ApproverRoles = parsed
	}

	// Application configuration
	if timeout := os.Getenv("WF_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid WF_APP_TIMEOUT: %w", err)
		}
		c.Application.Timeout = d
	}
	if verbose := os.Getenv("WF_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return fmt.Errorf("invalid WF_APP_VERBOSE: %w", err)
		}
		c.Application.Verbose = b
	}

	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory cannot be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename cannot be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Validation.TaskMinLength < 1 {
		return fmt.Errorf("task minimum length must be at least 1")
	}
	if c.Validation.TaskMaxLength < c.Validation.TaskMinLength {
		return fmt.Errorf("task maximum length must be >= minimum length")
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return fmt.Errorf("description maximum length cannot be negative")
	}
	if c.Ledger.OvertimeThreshold < 0 {
		return fmt.Errorf("overtime threshold cannot be negative")
	}
	if len(c.Ledger.ApproverRoles) == 0 {
		return fmt.Errorf("at least one approver role must be configured")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}
