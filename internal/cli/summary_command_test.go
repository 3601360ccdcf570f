package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-forge/internal/domain"
	"work-forge/internal/errors"
)

func TestSummaryCommand_Execute(t *testing.T) {
	app, ledger := setupTestApp(t)
	ctx := context.Background()

	seedEntry(t, app, ledger, "2026-03-02")
	seedEntry(t, app, ledger, "2026-03-03")

	cmd := NewSummaryCommand(app)
	require.NoError(t, cmd.Execute(ctx, []string{"2026-03-01", "2026-03-07"}))
	require.NoError(t, cmd.Execute(ctx, []string{"2026-03-01", "2026-03-07", "user=user-1"}))
}

func TestSummaryCommand_MissingRange(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := NewSummaryCommand(app)
	err := cmd.Execute(context.Background(), []string{"2026-03-01"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestSummaryCommand_Numbers(t *testing.T) {
	app, ledger := setupTestApp(t)
	ctx := context.Background()

	// 8h billable, 4h non-billable
	seedEntry(t, app, ledger, "2026-03-02")
	billable := false
	_, err := ledger.CreateEntry(ctx, domain.EntryInput{
		UserID:    "user-1",
		ProjectID: "project-2",
		Task:      "Team meeting",
		Date:      "2026-03-03",
		StartTime: "08:00",
		EndTime:   "12:00",
		Billable:  &billable,
	})
	require.NoError(t, err)

	summary, err := ledger.Aggregate(ctx, domain.SearchOptions{}, "2026-03-01", "2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, 12.0, summary.TotalHours)
	assert.Equal(t, 8.0, summary.BillableHours)
	assert.Equal(t, 4.0, summary.NonBillableHours)
	assert.Equal(t, 8.0, summary.ByProject["project-1"])
	assert.Equal(t, 4.0, summary.ByProject["project-2"])
}
