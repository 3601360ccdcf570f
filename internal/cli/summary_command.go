package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"work-forge/internal/api"
	"work-forge/internal/errors"
)

// weekdayOrder lists weekday names Monday-first for summary display
var weekdayOrder = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// SummaryCommand handles the summary command
type SummaryCommand struct {
	ledger       api.Ledger
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		ledger:       app.ledger,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command over an inclusive date range:
// wf summary FROM TO [user=] [project=] [status=]
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "summary",
			"usage: wf summary FROM TO [user=...] [project=...]")
	}

	opts, err := searchOptionsFromArgs(args[2:])
	if err != nil {
		return err
	}

	summary, err := c.ledger.Aggregate(ctx, opts, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("summarize entries", err)
	}

	fmt.Printf("Summary %s to %s\n", args[0], args[1])
	fmt.Printf("  Entries:      %d\n", summary.EntryCount)
	fmt.Printf("  Total:        %.2fh\n", summary.TotalHours)
	fmt.Printf("  Billable:     %.2fh\n", summary.BillableHours)
	fmt.Printf("  Non-billable: %.2fh\n", summary.NonBillableHours)
	fmt.Printf("  Overtime:     %.2fh\n", summary.OvertimeHours)

	if len(summary.ByWeekday) > 0 {
		fmt.Println("By weekday:")
		for _, day := range weekdayOrder {
			if hours, ok := summary.ByWeekday[day]; ok {
				fmt.Printf("  %-10s %.2fh\n", day, hours)
			}
		}
	}

	if len(summary.ByProject) > 0 {
		projects := make([]string, 0, len(summary.ByProject))
		for project := range summary.ByProject {
			projects = append(projects, project)
		}
		sort.Strings(projects)

		fmt.Println("By project:")
		for _, project := range projects {
			fmt.Printf("  %s  %.2fh\n", project, summary.ByProject[project])
		}
	}

	return nil
}
