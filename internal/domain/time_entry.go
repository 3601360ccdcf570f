package domain

import (
	"time"
)

// TimeEntry represents a single record of time worked against a project on
// a given date. This is a pure domain model without storage concerns.
type TimeEntry struct {
	ID              string
	UserID          string
	ProjectID       string
	Task            string
	Date            time.Time
	StartTime       string // wall-clock HH:MM
	EndTime         string // wall-clock HH:MM
	Hours           float64
	Description     string
	Billable        bool
	Status          Status
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsEditable reports whether the entry's fields may still be mutated.
// Only pending entries are editable.
func (te TimeEntry) IsEditable() bool {
	return te.Status == StatusPending
}

// IsDeletable reports whether the entry may be deleted by its owner.
// Once submitted, deletion is disallowed.
func (te TimeEntry) IsDeletable() bool {
	return te.Status == StatusPending
}

// IsOwnedBy reports whether the given actor owns this entry.
func (te TimeEntry) IsOwnedBy(actorID string) bool {
	return te.UserID == actorID
}

// EntryInput is the raw, untrusted payload for creating or updating an
// entry. All fields arrive as loosely-typed values and pass through the
// validation boundary before becoming an EntryDraft.
type EntryInput struct {
	UserID      string
	ProjectID   string
	Task        string
	Date        string // ISO-8601 calendar date
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Description string
	Billable    *bool
	Hours       *float64 // informational only; recomputed on persist
}

// EntryDraft is a validated, normalized entry payload. Hours is absent:
// the authoritative value is derived from the clock times at persist time.
type EntryDraft struct {
	UserID      string
	ProjectID   string
	Task        string
	Date        time.Time
	StartTime   string
	EndTime     string
	Description string
	Billable    bool
}

// SearchOptions represents search criteria for time entries.
type SearchOptions struct {
	UserID    *string
	ProjectID *string
	Status    *Status
	From      *time.Time
	To        *time.Time
}
