package validation

import (
	"strings"

	"github.com/google/uuid"

	"work-forge/internal/config"
	"work-forge/internal/timecalc"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidReference checks if a string is a well-formed stable identifier
// (UUID). Only the shape is checked here; existence is the directory
// collaborator's concern.
func (v *Validator) IsValidReference(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidClockTime checks if a string is a 24-hour HH:MM wall-clock value
func (v *Validator) IsValidClockTime(s string) bool {
	return timecalc.IsValidClock(s)
}

// IsValidDate checks if a string parses as an ISO-8601 calendar date
func (v *Validator) IsValidDate(s string) bool {
	_, err := timecalc.ParseDate(s)
	return err == nil
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// TaskMinLength returns the configured minimum task length or the default
func (v *Validator) TaskMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskMinLength
	}
	return 3
}

// TaskMaxLength returns the configured maximum task length or the default
func (v *Validator) TaskMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskMaxLength
	}
	return 200
}

// DescriptionMaxLength returns the configured maximum description length or the default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500
}
