package cli

import (
	"context"
	"fmt"

	"work-forge/internal/api"
	"work-forge/internal/errors"
)

// SubmitCommand handles the submit command
type SubmitCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewSubmitCommand creates a new submit command handler
func NewSubmitCommand(app *App) *SubmitCommand {
	return &SubmitCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the submit command for the acting user's pending entries
// in an inclusive date range: wf submit FROM TO.
func (c *SubmitCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "submit",
			"usage: wf submit FROM TO")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	count, err := c.ledger.SubmitRange(ctx, actor.ID, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("submit entries", err)
	}

	if count == 0 {
		fmt.Println("No pending entries in range")
		return nil
	}
	fmt.Printf("Submitted %d entries for approval\n", count)
	return nil
}
