package validation

import (
	"work-forge/internal/config"
	"work-forge/internal/domain"
	"work-forge/internal/timecalc"
)

// EntryValidator is the typed boundary for candidate entry payloads. It
// either returns a normalized draft or a ValidationError listing every
// violated field, never just the first.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator with default limits
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// NewEntryValidatorWithConfig creates a new entry validator with configuration
func NewEntryValidatorWithConfig(cfg *config.Config) *EntryValidator {
	return &EntryValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateEntry validates a candidate entry payload and produces a
// normalized draft. The function is pure; it never mutates shared state.
func (ev *EntryValidator) ValidateEntry(input domain.EntryInput) (*domain.EntryDraft, error) {
	validationError := NewValidationError()

	// Owner reference
	if !ev.validator.IsNonEmptyString(input.UserID) {
		validationError.AddRequiredError("user_id")
	} else if !ev.validator.IsValidReference(input.UserID) {
		validationError.AddInvalidFormatError("user_id", input.UserID, "UUID")
	}

	// Project reference: shape only, existence is delegated to the
	// project directory
	if !ev.validator.IsNonEmptyString(input.ProjectID) {
		validationError.AddRequiredError("project_id")
	} else if !ev.validator.IsValidReference(input.ProjectID) {
		validationError.AddInvalidFormatError("project_id", input.ProjectID, "UUID")
	}

	// Task
	task := ev.validator.TrimString(input.Task)
	minLen := ev.validator.TaskMinLength()
	maxLen := ev.validator.TaskMaxLength()
	if task == "" {
		validationError.AddRequiredError("task")
	} else if !ev.validator.IsValidStringLength(task, minLen, maxLen) {
		validationError.AddInvalidLengthError("task", input.Task, minLen, maxLen)
	}

	// Date
	parsedDate, dateErr := timecalc.ParseDate(input.Date)
	if input.Date == "" {
		validationError.AddRequiredError("date")
	} else if dateErr != nil {
		validationError.AddInvalidFormatError("date", input.Date, "YYYY-MM-DD")
	}

	// Clock times
	if input.StartTime == "" {
		validationError.AddRequiredError("start_time")
	} else if !ev.validator.IsValidClockTime(input.StartTime) {
		validationError.AddInvalidFormatError("start_time", input.StartTime, "HH:MM (00:00-23:59)")
	}
	if input.EndTime == "" {
		validationError.AddRequiredError("end_time")
	} else if !ev.validator.IsValidClockTime(input.EndTime) {
		validationError.AddInvalidFormatError("end_time", input.EndTime, "HH:MM (00:00-23:59)")
	}

	// Description
	description := ev.validator.TrimString(input.Description)
	maxDesc := ev.validator.DescriptionMaxLength()
	if len(description) > maxDesc {
		validationError.AddInvalidLengthError("description", input.Description, 0, maxDesc)
	}

	// A supplied hours value is a client-side preview only. The persisted
	// value is always derived from the clock times, so the preview is
	// ignored rather than validated.

	if validationError.HasErrors() {
		return nil, validationError
	}

	billable := true
	if input.Billable != nil {
		billable = *input.Billable
	}

	return &domain.EntryDraft{
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		Task:        task,
		Date:        parsedDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: description,
		Billable:    billable,
	}, nil
}

// ValidateEntryID validates an entry identifier's shape
func (ev *EntryValidator) ValidateEntryID(id string) error {
	if !ev.validator.IsValidReference(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("entry_id", id, "UUID")
		return validationError
	}
	return nil
}

// ValidateUserID validates a user identifier's shape
func (ev *EntryValidator) ValidateUserID(id string) error {
	if !ev.validator.IsValidReference(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("user_id", id, "UUID")
		return validationError
	}
	return nil
}

// ValidateRejectionReason validates that a rejection carries a non-empty reason
func (ev *EntryValidator) ValidateRejectionReason(reason string) error {
	if !ev.validator.IsNonEmptyString(reason) {
		validationError := NewValidationError()
		validationError.AddRequiredError("rejection_reason")
		return validationError
	}
	return nil
}

// ValidateDateRange validates an inclusive calendar date range
func (ev *EntryValidator) ValidateDateRange(from, to string) error {
	validationError := NewValidationError()

	fromDate, fromErr := timecalc.ParseDate(from)
	if fromErr != nil {
		validationError.AddInvalidFormatError("start_date", from, "YYYY-MM-DD")
	}
	toDate, toErr := timecalc.ParseDate(to)
	if toErr != nil {
		validationError.AddInvalidFormatError("end_date", to, "YYYY-MM-DD")
	}
	if fromErr == nil && toErr == nil && toDate.Before(fromDate) {
		validationError.AddInvalidRangeError("date_range", map[string]string{
			"start": from,
			"end":   to,
		}, "end date must be on or after start date")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
