package cli

import (
	"context"
	"fmt"

	"work-forge/internal/api"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. Expected arguments:
// PROJECT TASK DATE START END, optionally followed by
// description=... and billable=false.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 5 {
		return errors.NewInvalidInputError("command", "add",
			"usage: wf add PROJECT TASK DATE START END [description=...] [billable=false]")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	input := domain.EntryInput{
		UserID:    actor.ID,
		ProjectID: args[0],
		Task:      args[1],
		Date:      args[2],
		StartTime: args[3],
		EndTime:   args[4],
	}

	options, err := parseKeyValueArgs(args[5:])
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

	entry, err := c.ledger.CreateEntry(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Printf("Added entry %s: %s on %s, %s-%s (%.2fh)\n",
		entry.ID, entry.Task, entry.Date.Format("2006-01-02"),
		entry.StartTime, entry.EndTime, entry.Hours)
	return nil
}
