package cli

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"work-forge/internal/api"
	"work-forge/internal/config"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
	"work-forge/internal/timecalc"
)

// mockLedger implements the Ledger interface in memory for testing
type mockLedger struct {
	entries map[string]*domain.TimeEntry
	nextID  int
	cfg     *config.Config
}

// newMockLedger creates a new mock Ledger instance
func newMockLedger() *mockLedger {
	return &mockLedger{
		entries: make(map[string]*domain.TimeEntry),
		nextID:  1,
		cfg:     config.NewConfig(),
	}
}

func (m *mockLedger) CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.TimeEntry, error) {
	hours, err := timecalc.DeriveHours(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	date, err := timecalc.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	billable := true
	if input.Billable != nil {
		billable = *input.Billable
	}

	now := time.Now().UTC()
	entry := &domain.TimeEntry{
		ID:          fmt.Sprintf("entry-%d", m.nextID),
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		Task:        input.Task,
		Date:        date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Hours:       hours,
		Description: input.Description,
		Billable:    billable,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.entries[entry.ID] = entry
	m.nextID++
	return entry, nil
}

func (m *mockLedger) GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error) {
	entry, exists := m.entries[id]
	if !exists {
		return nil, errors.NewNotFoundError("time entry", id)
	}
	return entry, nil
}

func (m *mockLedger) SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeEntry, error) {
	var results []*domain.TimeEntry
	for _, entry := range m.entries {
		if opts.UserID != nil && entry.UserID != *opts.UserID {
			continue
		}
		if opts.ProjectID != nil && entry.ProjectID != *opts.ProjectID {
			continue
		}
		if opts.Status != nil && entry.Status != *opts.Status {
			continue
		}
		if opts.From != nil && entry.Date.Before(*opts.From) {
			continue
		}
		if opts.To != nil && entry.Date.After(*opts.To) {
			continue
		}
		results = append(results, entry)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})
	return results, nil
}

func (m *mockLedger) UpdateEntry(ctx context.Context, id string, input domain.EntryInput, actor domain.Actor) (*domain.TimeEntry, error) {
	entry, err := m.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(actor.ID) {
		return nil, errors.NewAuthorizationError(actor.ID, "update entry")
	}
	if !entry.IsEditable() {
		return nil, errors.NewInvalidStateError(string(entry.Status), "update entry")
	}

	hours, err := timecalc.DeriveHours(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	date, err := timecalc.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	entry.ProjectID = input.ProjectID
	entry.Task = input.Task
	entry.Date = date
	entry.StartTime = input.StartTime
	entry.EndTime = input.EndTime
	entry.Hours = hours
	entry.Description = input.Description
	if input.Billable != nil {
		entry.Billable = *input.Billable
	}
	entry.UpdatedAt = time.Now().UTC()
	return entry, nil
}

func (m *mockLedger) DeleteEntry(ctx context.Context, id string, actor domain.Actor) error {
	entry, err := m.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if !entry.IsOwnedBy(actor.ID) {
		return errors.NewAuthorizationError(actor.ID, "delete entry")
	}
	if !entry.IsDeletable() {
		return errors.NewInvalidStateError(string(entry.Status), "delete entry")
	}
	delete(m.entries, id)
	return nil
}

func (m *mockLedger) SubmitRange(ctx context.Context, userID, fromDate, toDate string) (int64, error) {
	from, err := timecalc.ParseDate(fromDate)
	if err != nil {
		return 0, err
	}
	to, err := timecalc.ParseDate(toDate)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var count int64
	for _, entry := range m.entries {
		if entry.UserID != userID || entry.Status != domain.StatusPending {
			continue
		}
		if !timecalc.InRange(entry.Date, from, to) {
			continue
		}
		entry.Status = domain.StatusSubmitted
		entry.SubmittedAt = &now
		count++
	}
	return count, nil
}

func (m *mockLedger) SetStatus(ctx context.Context, id string, status domain.Status, actor domain.Actor, reason string) (*domain.TimeEntry, error) {
	entry, err := m.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.StatusApproved, domain.StatusRejected:
		if !m.cfg.IsApproverRole(string(actor.Role)) {
			return nil, errors.NewAuthorizationError(actor.ID, "review entry")
		}
		if entry.Status != domain.StatusSubmitted {
			return nil, errors.NewInvalidStateError(string(entry.Status), string(status))
		}
	case domain.StatusPending:
		return m.Reopen(ctx, id, actor)
	default:
		return nil, errors.NewInvalidInputError("status", string(status), "not a valid transition target")
	}

	now := time.Now().UTC()
	entry.Status = status
	if status == domain.StatusApproved {
		entry.ApprovedAt = &now
		approver := actor.ID
		entry.ApprovedBy = &approver
	} else {
		entry.RejectionReason = reason
	}
	return entry, nil
}

func (m *mockLedger) Reopen(ctx context.Context, id string, actor domain.Actor) (*domain.TimeEntry, error) {
	entry, err := m.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(actor.ID) {
		return nil, errors.NewAuthorizationError(actor.ID, "reopen entry")
	}
	if entry.Status != domain.StatusRejected {
		return nil, errors.NewInvalidStateError(string(entry.Status), "reopen entry")
	}
	entry.Status = domain.StatusPending
	entry.RejectionReason = ""
	entry.SubmittedAt = nil
	return entry, nil
}

func (m *mockLedger) Aggregate(ctx context.Context, opts domain.SearchOptions, fromDate, toDate string) (*domain.Summary, error) {
	from, err := timecalc.ParseDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := timecalc.ParseDate(toDate)
	if err != nil {
		return nil, err
	}

	entries, err := m.SearchEntries(ctx, opts)
	if err != nil {
		return nil, err
	}
	return domain.ComputeSummary(entries, from, to, m.cfg.Ledger.OvertimeThreshold), nil
}

var _ api.Ledger = (*mockLedger)(nil)

// setupTestApp creates a test app backed by the in-memory mock ledger
func setupTestApp(t *testing.T) (*App, *mockLedger) {
	t.Helper()
	ledger := newMockLedger()
	app := NewApp(ledger, config.NewConfig())
	app.SetActor("user-1", "member")
	return app, ledger
}
