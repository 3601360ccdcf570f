package domain

import (
	"fmt"

	"work-forge/internal/repository/sqlite"
	"work-forge/internal/timecalc"
)

// EntryMapper handles conversion between domain and database TimeEntry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *EntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	dbEntry := sqlite.TimeEntry{
		ID:          entry.ID,
		UserID:      entry.UserID,
		ProjectID:   entry.ProjectID,
		Task:        entry.Task,
		Date:        timecalc.FormatDate(entry.Date),
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Hours:       entry.Hours,
		Description: entry.Description,
		Billable:    entry.Billable,
		Status:      string(entry.Status),
		SubmittedAt: entry.SubmittedAt,
		ApprovedAt:  entry.ApprovedAt,
		ApprovedBy:  entry.ApprovedBy,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.RejectionReason != "" {
		reason := entry.RejectionReason
		dbEntry.RejectionReason = &reason
	}
	return dbEntry
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) (TimeEntry, error) {
	date, err := timecalc.ParseDate(dbEntry.Date)
	if err != nil {
		return TimeEntry{}, fmt.Errorf("invalid entry date %q: %w", dbEntry.Date, err)
	}

	entry := TimeEntry{
		ID:          dbEntry.ID,
		UserID:      dbEntry.UserID,
		ProjectID:   dbEntry.ProjectID,
		Task:        dbEntry.Task,
		Date:        date,
		StartTime:   dbEntry.StartTime,
		EndTime:     dbEntry.EndTime,
		Hours:       dbEntry.Hours,
		Description: dbEntry.Description,
		Billable:    dbEntry.Billable,
		Status:      Status(dbEntry.Status),
		SubmittedAt: dbEntry.SubmittedAt,
		ApprovedAt:  dbEntry.ApprovedAt,
		ApprovedBy:  dbEntry.ApprovedBy,
		CreatedAt:   dbEntry.CreatedAt,
		UpdatedAt:   dbEntry.UpdatedAt,
	}
	if dbEntry.RejectionReason != nil {
		entry.RejectionReason = *dbEntry.RejectionReason
	}
	return entry, nil
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) ([]*TimeEntry, error) {
	entries := make([]*TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry, err := m.FromDatabase(*dbEntry)
		if err != nil {
			return nil, err
		}
		entries[i] = &entry
	}
	return entries, nil
}
