package sqlite

import "time"

// TimeEntry is the database representation of a ledger entry. Clock times
// are stored as HH:MM strings and the entry date as YYYY-MM-DD; lifecycle
// timestamps use nullable RFC3339 columns.
type TimeEntry struct {
	ID              string
	UserID          string
	ProjectID       string
	Task            string
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	Hours           float64
	Description     string
	Billable        bool
	Status          string
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SearchOptions contains all possible search parameters for entries.
type SearchOptions struct {
	UserID    *string
	ProjectID *string
	Status    *string
	FromDate  *string // YYYY-MM-DD inclusive
	ToDate    *string // YYYY-MM-DD inclusive
}
