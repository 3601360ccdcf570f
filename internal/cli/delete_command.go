package cli

import (
	"context"
	"fmt"

	"work-forge/internal/api"
	"work-forge/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute deletes a pending entry owned by the acting user: wf delete ID
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: wf delete ID")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	if err := c.ledger.DeleteEntry(ctx, args[0], actor); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Printf("Deleted entry %s\n", args[0])
	return nil
}
