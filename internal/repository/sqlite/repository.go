package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"work-forge/internal/errors"
	"work-forge/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const entryColumns = `id, user_id, project_id, task, entry_date, start_time, end_time,
	hours, description, billable, status, submitted_at, approved_at, approved_by,
	rejection_reason, created_at, updated_at`

// Repository defines the interface for ledger persistence operations.
// Status transitions are compare-and-swap updates conditioned on the
// current status so that a transition never races a concurrent mutation.
type Repository interface {
	CreateEntry(ctx context.Context, entry *TimeEntry) error
	GetEntry(ctx context.Context, id string) (*TimeEntry, error)
	SearchEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error)

	// UpdatePendingEntry and DeletePendingEntry only touch entries still
	// in the pending status; any other status yields an invalid state error.
	UpdatePendingEntry(ctx context.Context, entry *TimeEntry) error
	DeletePendingEntry(ctx context.Context, id string) error

	// SubmitPendingRange moves all of a user's pending entries within the
	// inclusive date range to submitted and returns how many were affected.
	SubmitPendingRange(ctx context.Context, userID, fromDate, toDate string, now time.Time) (int64, error)

	ApproveSubmitted(ctx context.Context, id, approverID string, now time.Time) error
	RejectSubmitted(ctx context.Context, id, reason string, now time.Time) error
	ReopenRejected(ctx context.Context, id string, now time.Time) error

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEntry inserts a new time entry
func (r *SQLiteRepository) CreateEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (` + entryColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ProjectID,
		entry.Task,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.Hours,
		entry.Description,
		entry.Billable,
		entry.Status,
		FormatTimePtrForDB(entry.SubmittedAt),
		FormatTimePtrForDB(entry.ApprovedAt),
		FormatStringPtrForDB(entry.ApprovedBy),
		FormatStringPtrForDB(entry.RejectionReason),
		FormatTimeForDB(entry.CreatedAt),
		FormatTimeForDB(entry.UpdatedAt),
	)
	if err != nil {
		return HandleDatabaseError("insert time entry", err)
	}
	return nil
}

// GetEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id string) (*TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", id, id)
}

// SearchEntries searches for time entries based on the provided options
func (r *SQLiteRepository) SearchEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.UserID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, *opts.UserID)
	}
	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.FromDate != nil {
		conditions = append(conditions, "entry_date >= ?")
		args = append(args, *opts.FromDate)
	}
	if opts.ToDate != nil {
		conditions = append(conditions, "entry_date <= ?")
		args = append(args, *opts.ToDate)
	}

	query := `SELECT ` + entryColumns + ` FROM time_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY entry_date ASC, start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
}

// UpdatePendingEntry updates the editable fields of a pending entry.
// The status condition makes the read-check-write a single atomic unit.
func (r *SQLiteRepository) UpdatePendingEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET project_id = ?, task = ?, entry_date = ?, start_time = ?, end_time = ?,
	    hours = ?, description = ?, billable = ?, updated_at = ?
	WHERE id = ? AND status = 'pending'`

	rows, err := ExecuteCountingRows(ctx, r.db, query,
		entry.ProjectID,
		entry.Task,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.Hours,
		entry.Description,
		entry.Billable,
		FormatTimeForDB(entry.UpdatedAt),
		entry.ID,
	)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conditionFailed(ctx, entry.ID, "update entry")
	}
	return nil
}

// DeletePendingEntry deletes an entry only while it is still pending
func (r *SQLiteRepository) DeletePendingEntry(ctx context.Context, id string) error {
	query := `DELETE FROM time_entries WHERE id = ? AND status = 'pending'`

	rows, err := ExecuteCountingRows(ctx, r.db, query, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conditionFailed(ctx, id, "delete entry")
	}
	return nil
}

// SubmitPendingRange transitions pending entries in the date range to
// submitted. Entries already submitted, approved or rejected are untouched.
func (r *SQLiteRepository) SubmitPendingRange(ctx context.Context, userID, fromDate, toDate string, now time.Time) (int64, error) {
	query := `
	UPDATE time_entries
	SET status = 'submitted', submitted_at = ?, updated_at = ?
	WHERE user_id = ? AND entry_date >= ? AND entry_date <= ? AND status = 'pending'`

	return ExecuteCountingRows(ctx, r.db, query,
		FormatTimeForDB(now), FormatTimeForDB(now), userID, fromDate, toDate)
}

// ApproveSubmitted transitions a submitted entry to approved
func (r *SQLiteRepository) ApproveSubmitted(ctx context.Context, id, approverID string, now time.Time) error {
	query := `
	UPDATE time_entries
	SET status = 'approved', approved_at = ?, approved_by = ?, updated_at = ?
	WHERE id = ? AND status = 'submitted'`

	rows, err := ExecuteCountingRows(ctx, r.db, query,
		FormatTimeForDB(now), approverID, FormatTimeForDB(now), id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conditionFailed(ctx, id, "transition to approved")
	}
	return nil
}

// RejectSubmitted transitions a submitted entry to rejected with a reason
func (r *SQLiteRepository) RejectSubmitted(ctx context.Context, id, reason string, now time.Time) error {
	query := `
	UPDATE time_entries
	SET status = 'rejected', rejection_reason = ?, updated_at = ?
	WHERE id = ? AND status = 'submitted'`

	rows, err := ExecuteCountingRows(ctx, r.db, query,
		reason, FormatTimeForDB(now), id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conditionFailed(ctx, id, "transition to rejected")
	}
	return nil
}

// ReopenRejected moves a rejected entry back to pending for resubmission,
// clearing the rejection reason and submission timestamp.
func (r *SQLiteRepository) ReopenRejected(ctx context.Context, id string, now time.Time) error {
	query := `
	UPDATE time_entries
	SET status = 'pending', rejection_reason = NULL, submitted_at = NULL, updated_at = ?
	WHERE id = ? AND status = 'rejected'`

	rows, err := ExecuteCountingRows(ctx, r.db, query, FormatTimeForDB(now), id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conditionFailed(ctx, id, "transition to pending")
	}
	return nil
}

// conditionFailed distinguishes a missing entry from a status guard
// failure after a conditional update affected zero rows.
func (r *SQLiteRepository) conditionFailed(ctx context.Context, id string, attempted string) error {
	entry, err := r.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	return errors.NewInvalidStateError(entry.Status, attempted)
}
