package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"work-forge/internal/config"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
	"work-forge/internal/repository/sqlite"
	"work-forge/internal/timecalc"
	"work-forge/internal/validation"
)

// Ledger defines the caller-facing operations of the time entry ledger.
// Every mutating operation receives the acting user; authorization for
// approval transitions is decided against the configured approver roles.
type Ledger interface {
	CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.TimeEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error)
	SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, id string, input domain.EntryInput, actor domain.Actor) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string, actor domain.Actor) error

	// SubmitRange moves all of a user's pending entries within the
	// inclusive date range to submitted and returns how many moved.
	SubmitRange(ctx context.Context, userID, fromDate, toDate string) (int64, error)

	// SetStatus performs an approver transition (approved or rejected).
	// Rejection requires a non-empty reason.
	SetStatus(ctx context.Context, id string, status domain.Status, actor domain.Actor, reason string) (*domain.TimeEntry, error)

	// Reopen moves a rejected entry back to pending for resubmission.
	Reopen(ctx context.Context, id string, actor domain.Actor) (*domain.TimeEntry, error)

	Aggregate(ctx context.Context, opts domain.SearchOptions, fromDate, toDate string) (*domain.Summary, error)
}

type ledgerImpl struct {
	repo           sqlite.Repository
	config         *config.Config
	mapper         *domain.EntryMapper
	entryValidator *validation.EntryValidator
}

// New creates a new Ledger instance.
func New(repo sqlite.Repository, cfg *config.Config) Ledger {
	return &ledgerImpl{
		repo:           repo,
		config:         cfg,
		mapper:         domain.NewEntryMapper(),
		entryValidator: validation.NewEntryValidatorWithConfig(cfg),
	}
}

// CreateEntry validates the payload, derives the authoritative hours value
// from the clock times and persists a new pending entry. Any client
// supplied hours value is discarded in favor of the derived one.
func (l *ledgerImpl) CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.TimeEntry, error) {
	draft, err := l.entryValidator.ValidateEntry(input)
	if err != nil {
		return nil, err
	}

	hours, err := timecalc.DeriveHours(draft.StartTime, draft.EndTime)
	if err != nil {
		return nil, errors.NewInvalidInputError("start_time", draft.StartTime, err.Error())
	}

	now := time.Now().UTC()
	entry := domain.TimeEntry{
		ID:          uuid.NewString(),
		UserID:      draft.UserID,
		ProjectID:   draft.ProjectID,
		Task:        draft.Task,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Hours:       hours,
		Description: draft.Description,
		Billable:    draft.Billable,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	dbEntry := l.mapper.ToDatabase(entry)
	if err := l.repo.CreateEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// GetEntry retrieves a single entry by ID.
func (l *ledgerImpl) GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error) {
	if err := l.entryValidator.ValidateEntryID(id); err != nil {
		return nil, err
	}

	dbEntry, err := l.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := l.mapper.FromDatabase(*dbEntry)
	if err != nil {
		return nil, errors.NewDatabaseError("map time entry", err)
	}
	return &entry, nil
}

// SearchEntries returns entries matching the given criteria.
func (l *ledgerImpl) SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error) {
	dbEntries, err := l.repo.SearchEntries(ctx, toDatabaseSearchOptions(opts))
	if err != nil {
		return nil, err
	}

	entries, err := l.mapper.FromDatabaseSlice(dbEntries)
	if err != nil {
		return nil, errors.NewDatabaseError("map time entries", err)
	}
	return entries, nil
}

// UpdateEntry mutates the editable fields of a pending entry owned by the
// actor. Hours is re-derived from the updated clock times.
func (l *ledgerImpl) UpdateEntry(ctx context.Context, id string, input domain.EntryInput, actor domain.Actor) (*domain.TimeEntry, error) {
	entry, err := l.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entry.IsOwnedBy(actor.ID) {
		return nil, errors.NewAuthorizationError(actor.ID, "update entry "+id)
	}
	if !entry.IsEditable() {
		return nil, errors.NewInvalidStateError(string(entry.Status), "update entry")
	}

	// The owner reference is immutable; validation runs against the
	// stored owner regardless of the payload.
	input.UserID = entry.UserID
	draft, err := l.entryValidator.ValidateEntry(input)
	if err != nil {
		return nil, err
	}

	hours, err := timecalc.DeriveHours(draft.StartTime, draft.EndTime)
	if err != nil {
		return nil, errors.NewInvalidInputError("start_time", draft.StartTime, err.Error())
	}

	updated := *entry
	updated.ProjectID = draft.ProjectID
	updated.Task = draft.Task
	updated.Date = draft.Date
	updated.StartTime = draft.StartTime
	updated.EndTime = draft.EndTime
	updated.Hours = hours
	updated.Description = draft.Description
	updated.Billable = draft.Billable
	updated.UpdatedAt = time.Now().UTC()

	dbEntry := l.mapper.ToDatabase(updated)
	if err := l.repo.UpdatePendingEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteEntry removes a pending entry owned by the actor. Once submitted,
// entries can no longer be deleted.
func (l *ledgerImpl) DeleteEntry(ctx context.Context, id string, actor domain.Actor) error {
	entry, err := l.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	if !entry.IsOwnedBy(actor.ID) {
		return errors.NewAuthorizationError(actor.ID, "delete entry "+id)
	}

	return l.repo.DeletePendingEntry(ctx, id)
}

// SubmitRange submits a user's pending entries over an inclusive date
// range. Entries already submitted, approved or rejected are untouched,
// so resubmitting a range is an idempotent no-op for them.
func (l *ledgerImpl) SubmitRange(ctx context.Context, userID, fromDate, toDate string) (int64, error) {
	if err := l.entryValidator.ValidateUserID(userID); err != nil {
		return 0, err
	}
	if err := l.entryValidator.ValidateDateRange(fromDate, toDate); err != nil {
		return 0, err
	}

	return l.repo.SubmitPendingRange(ctx, userID, fromDate, toDate, time.Now().UTC())
}

// SetStatus performs an approver transition on a submitted entry. The
// transition is checked against the status graph up front; the conditional
// repository updates guard the same edge against concurrent writers.
func (l *ledgerImpl) SetStatus(ctx context.Context, id string, status domain.Status, actor domain.Actor, reason string) (*domain.TimeEntry, error) {
	if err := l.entryValidator.ValidateEntryID(id); err != nil {
		return nil, err
	}

	if status == domain.StatusPending {
		return l.Reopen(ctx, id, actor)
	}

	entry, err := l.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.StatusApproved:
		if !l.config.IsApproverRole(string(actor.Role)) {
			return nil, errors.NewAuthorizationError(actor.ID, "approve entry "+id)
		}
		if !domain.CanTransition(entry.Status, status) {
			return nil, errors.NewInvalidStateError(string(entry.Status), string(status))
		}
		if err := l.repo.ApproveSubmitted(ctx, id, actor.ID, time.Now().UTC()); err != nil {
			return nil, err
		}

	case domain.StatusRejected:
		if !l.config.IsApproverRole(string(actor.Role)) {
			return nil, errors.NewAuthorizationError(actor.ID, "reject entry "+id)
		}
		if err := l.entryValidator.ValidateRejectionReason(reason); err != nil {
			return nil, err
		}
		if !domain.CanTransition(entry.Status, status) {
			return nil, errors.NewInvalidStateError(string(entry.Status), string(status))
		}
		if err := l.repo.RejectSubmitted(ctx, id, reason, time.Now().UTC()); err != nil {
			return nil, err
		}

	case domain.StatusSubmitted:
		// Submission is an owner action that goes through SubmitRange,
		// never a direct transition target here.
		return nil, errors.NewInvalidStateError(string(entry.Status), string(status))

	default:
		return nil, errors.NewInvalidInputError("status", string(status), "not a recognized status")
	}

	return l.GetEntry(ctx, id)
}

// Reopen moves a rejected entry owned by the actor back to pending,
// clearing the rejection reason and submission timestamp.
func (l *ledgerImpl) Reopen(ctx context.Context, id string, actor domain.Actor) (*domain.TimeEntry, error) {
	entry, err := l.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entry.IsOwnedBy(actor.ID) {
		return nil, errors.NewAuthorizationError(actor.ID, "reopen entry "+id)
	}
	if !domain.CanTransition(entry.Status, domain.StatusPending) {
		return nil, errors.NewInvalidStateError(string(entry.Status), string(domain.StatusPending))
	}

	if err := l.repo.ReopenRejected(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}

	return l.GetEntry(ctx, id)
}

// Aggregate summarizes entries matching the criteria over an inclusive
// date range. An empty result set yields an all-zero summary.
func (l *ledgerImpl) Aggregate(ctx context.Context, opts domain.SearchOptions, fromDate, toDate string) (*domain.Summary, error) {
	if err := l.entryValidator.ValidateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}

	start, _ := timecalc.ParseDate(fromDate)
	end, _ := timecalc.ParseDate(toDate)
	opts.From = &start
	opts.To = &end

	entries, err := l.SearchEntries(ctx, opts)
	if err != nil {
		return nil, err
	}

	return domain.ComputeSummary(entries, start, end, l.config.Ledger.OvertimeThreshold), nil
}

func toDatabaseSearchOptions(opts domain.SearchOptions) sqlite.SearchOptions {
	dbOpts := sqlite.SearchOptions{
		UserID:    opts.UserID,
		ProjectID: opts.ProjectID,
	}
	if opts.Status != nil {
		status := string(*opts.Status)
		dbOpts.Status = &status
	}
	if opts.From != nil {
		from := timecalc.FormatDate(*opts.From)
		dbOpts.FromDate = &from
	}
	if opts.To != nil {
		to := timecalc.FormatDate(*opts.To)
		dbOpts.ToDate = &to
	}
	return dbOpts
}
