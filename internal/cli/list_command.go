package cli

import (
	"context"
	"fmt"

	"work-forge/internal/api"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
	"work-forge/internal/timecalc"
)

// ListCommand handles the list command
type ListCommand struct {
	ledger       api.Ledger
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		ledger:       app.ledger,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command with optional key=value filters:
// user=, project=, status=, from=, to=.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	opts, err := searchOptionsFromArgs(args)
	if err != nil {
		return err
	}

	entries, err := c.ledger.SearchEntries(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	c.printEntries(entries)
	return nil
}

// searchOptionsFromArgs builds search options from key=value filters
func searchOptionsFromArgs(args []string) (domain.SearchOptions, error) {
	opts := domain.SearchOptions{}

	filters, err := parseKeyValueArgs(args)
	if err != nil {
		return opts, err
	}

	for key, value := range filters {
		switch key {
		case "user":
			user := value
			opts.UserID = &user
		case "project":
			project := value
			opts.ProjectID = &project
		case "status":
			status := domain.Status(value)
			if !status.Valid() {
				return opts, errors.NewInvalidInputError("status", value,
					"must be pending, submitted, approved or rejected")
			}
			opts.Status = &status
		case "from":
			from, err := timecalc.ParseDate(value)
			if err != nil {
				return opts, errors.NewInvalidInputError("from", value, "expected YYYY-MM-DD")
			}
			opts.From = &from
		case "to":
			to, err := timecalc.ParseDate(value)
			if err != nil {
				return opts, errors.NewInvalidInputError("to", value, "expected YYYY-MM-DD")
			}
			opts.To = &to
		default:
			return opts, errors.NewInvalidInputError("filter", key,
				"unknown filter; expected user, project, status, from or to")
		}
	}

	return opts, nil
}

// printEntries prints one line per entry in the format:
// date start-end (hours) [status] task
func (c *ListCommand) printEntries(entries []*domain.TimeEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return
	}

	for _, entry := range entries {
		billableMark := ""
		if !entry.Billable {
			billableMark = " (non-billable)"
		}
		fmt.Printf("%s  %s-%s  %5.2fh  [%s]  %s%s\n",
			entry.Date.Format("2006-01-02"),
			entry.StartTime, entry.EndTime,
			entry.Hours, entry.Status, entry.Task, billableMark)
		if entry.Status == domain.StatusRejected && entry.RejectionReason != "" {
			fmt.Printf("            rejected: %s\n", entry.RejectionReason)
		}
	}
	fmt.Printf("%d entries\n", len(entries))
}
