package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"work-forge/internal/api"
	"work-forge/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	ledger       api.Ledger
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		ledger:       app.ledger,
		errorHandler: NewErrorHandler(),
	}
}

// Execute exports entries in the requested format:
// wf export format=csv [user=] [project=] [status=] [from=] [to=]
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "export", "usage: wf export format=csv")
	}

	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		return c.exportCSV(ctx, args[1:])
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// exportCSV writes matching entries as CSV rows to stdout
func (c *ExportCommand) exportCSV(ctx context.Context, filterArgs []string) error {
	opts, err := searchOptionsFromArgs(filterArgs)
	if err != nil {
		return err
	}

	entries, err := c.ledger.SearchEntries(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("export entries", err)
	}

	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"ID", "User", "Project", "Task", "Date", "Start", "End", "Hours", "Billable", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			entry.ID,
			entry.UserID,
			entry.ProjectID,
			entry.Task,
			entry.Date.Format("2006-01-02"),
			entry.StartTime,
			entry.EndTime,
			fmt.Sprintf("%.2f", entry.Hours),
			strconv.FormatBool(entry.Billable),
			string(entry.Status),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
