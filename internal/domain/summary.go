package domain

import (
	"time"

	"work-forge/internal/timecalc"
)

// Summary holds aggregate hour statistics over a set of time entries.
type Summary struct {
	TotalHours       float64
	BillableHours    float64
	NonBillableHours float64
	OvertimeHours    float64
	EntryCount       int
	ByWeekday        map[string]float64
	ByProject        map[string]float64
}

// NewSummary returns an all-zero summary with initialized breakdown maps.
func NewSummary() *Summary {
	return &Summary{
		ByWeekday: make(map[string]float64),
		ByProject: make(map[string]float64),
	}
}

// ComputeSummary aggregates entries whose date falls within [start, end]
// inclusive. Overtime is a per-entry heuristic: hours beyond the daily
// threshold count as overtime regardless of weekly totals. The function is
// pure and deterministic; an empty input yields an all-zero summary.
func ComputeSummary(entries []*TimeEntry, start, end time.Time, overtimeThreshold float64) *Summary {
	summary := NewSummary()

	for _, entry := range entries {
		if entry == nil || !timecalc.InRange(entry.Date, start, end) {
			continue
		}

		summary.EntryCount++
		summary.TotalHours += entry.Hours
		if entry.Billable {
			summary.BillableHours += entry.Hours
		}
		if entry.Hours > overtimeThreshold {
			summary.OvertimeHours += entry.Hours - overtimeThreshold
		}

		summary.ByWeekday[entry.Date.Weekday().String()] += entry.Hours
		summary.ByProject[entry.ProjectID] += entry.Hours
	}

	summary.TotalHours = timecalc.Round2(summary.TotalHours)
	summary.BillableHours = timecalc.Round2(summary.BillableHours)
	summary.NonBillableHours = timecalc.Round2(summary.TotalHours - summary.BillableHours)
	summary.OvertimeHours = timecalc.Round2(summary.OvertimeHours)
	for day, hours := range summary.ByWeekday {
		summary.ByWeekday[day] = timecalc.Round2(hours)
	}
	for project, hours := range summary.ByProject {
		summary.ByProject[project] = timecalc.Round2(hours)
	}

	return summary
}
