package cli

import (
	"context"
	"fmt"
	"strings"

	"work-forge/internal/api"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
)

// ApproveCommand handles the approve command
type ApproveCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewApproveCommand creates a new approve command handler
func NewApproveCommand(app *App) *ApproveCommand {
	return &ApproveCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute approves a submitted entry: wf approve ID
func (c *ApproveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "approve", "usage: wf approve ID")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	entry, err := c.ledger.SetStatus(ctx, args[0], domain.StatusApproved, actor, "")
	if err != nil {
		return c.errorHandler.Handle("approve entry", err)
	}

	fmt.Printf("Approved entry %s (%s, %.2fh)\n", entry.ID, entry.Task, entry.Hours)
	return nil
}

// RejectCommand handles the reject command
type RejectCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewRejectCommand creates a new reject command handler
func NewRejectCommand(app *App) *RejectCommand {
	return &RejectCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute rejects a submitted entry with a reason: wf reject ID REASON...
func (c *RejectCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "reject", "usage: wf reject ID REASON")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	reason := strings.Join(args[1:], " ")
	entry, err := c.ledger.SetStatus(ctx, args[0], domain.StatusRejected, actor, reason)
	if err != nil {
		return c.errorHandler.Handle("reject entry", err)
	}

	fmt.Printf("Rejected entry %s: %s\n", entry.ID, entry.RejectionReason)
	return nil
}

// ReopenCommand handles the reopen command
type ReopenCommand struct {
	ledger       api.Ledger
	app          *App
	errorHandler *ErrorHandler
}

// NewReopenCommand creates a new reopen command handler
func NewReopenCommand(app *App) *ReopenCommand {
	return &ReopenCommand{
		ledger:       app.ledger,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute moves a rejected entry of the acting user back to pending:
// wf reopen ID
func (c *ReopenCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "reopen", "usage: wf reopen ID")
	}

	actor, err := c.app.RequireActor()
	if err != nil {
		return err
	}

	entry, err := c.ledger.Reopen(ctx, args[0], actor)
	if err != nil {
		return c.errorHandler.Handle("reopen entry", err)
	}

	fmt.Printf("Reopened entry %s for editing\n", entry.ID)
	return nil
}
