package cli

import (
	"context"
	"fmt"

	"work-forge/internal/api"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute replaces the editable fields of a pending entry owned by the
// acting user: wf edit ID PROJECT TASK DATE START END
// [description=...] [billable=false]. Hours are rederived from the
// clock times.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 6 {
		return errors.NewInvalidInputError("command", "edit",
			"usage: wf edit ID PROJECT TASK DATE START END [description=...] [billable=false]")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	input := domain.EntryInput{
		ProjectID: args[1],
		Task:      args[2],
		Date:      args[3],
		StartTime: args[4],
		EndTime:   args[5],
	}

	options, err := parseKeyValueArgs(args[6:])
	if err != nil {
		return err
	}
	if description, ok := options["description"]; ok {
		input.Description = description
	}
	if billableStr, ok := options["billable"]; ok {
		billable := billableStr != "false"
		input.Billable = &billable
	}

	entry, err := c.ledger.UpdateEntry(ctx, args[0], input, actor)
	if err != nil {
		return c.errorHandler.Handle("edit entry", err)
	}

	fmt.Printf("Updated entry %s: %s on %s, %s-%s (%.2fh)\n",
		entry.ID, entry.Task, entry.Date.Format("2006-01-02"),
		entry.StartTime, entry.EndTime, entry.Hours)
	return nil
}
