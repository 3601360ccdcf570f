package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var submittedAt, approvedAt sql.NullTime
	var approvedBy, rejectionReason sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ProjectID,
		&entry.Task,
		&entry.Date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Hours,
		&entry.Description,
		&entry.Billable,
		&entry.Status,
		&submittedAt,
		&approvedAt,
		&approvedBy,
		&rejectionReason,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if submittedAt.Valid {
		entry.SubmittedAt = &submittedAt.Time
	}
	if approvedAt.Valid {
		entry.ApprovedAt = &approvedAt.Time
	}
	if approvedBy.Valid {
		entry.ApprovedBy = &approvedBy.String
	}
	if rejectionReason.Valid {
		entry.RejectionReason = &rejectionReason.String
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
