package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"work-forge/internal/api"
	"work-forge/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(ledger api.Ledger, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(ledger, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "wf",
		Short: "A command-line time entry ledger",
		Long: `Work Forge (wf) is a command-line ledger for project time entries.

Entries record clock times for a task on a date; the worked hours are
derived from the clock times, with shifts crossing midnight wrapping to
the next day. Entries move through an approval lifecycle: pending ->
submitted -> approved or rejected, and rejected entries can be reopened
for correction.

EXAMPLES:
  wf add PROJECT "Fix login flow" 2026-03-02 09:00 17:00
  wf add PROJECT "On-call shift" 2026-03-02 22:00 06:00 billable=false
  wf list status=pending from=2026-03-01 to=2026-03-07
  wf submit 2026-03-01 2026-03-07
  wf approve ENTRY-ID --role manager
  wf reject ENTRY-ID "hours look wrong" --role manager
  wf reopen ENTRY-ID
  wf summary 2026-03-01 2026-03-07
  wf export format=csv status=approved > approved.csv

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Identity:
    WF_ACTOR                               Acting user id (or --actor)
    WF_ROLE                                Acting role (or --role, default: member)

  Database Configuration:
    WF_DB_DIR                              Database directory (default: ~/.workforge)
    WF_DB_FILENAME                         Database filename (default: ledger.db)
    WF_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WF_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Validation Configuration:
    WF_VALIDATION_TASK_MIN                 Min task length (default: 3)
    WF_VALIDATION_TASK_MAX                 Max task length (default: 200)
    WF_VALIDATION_DESCRIPTION_MAX          Max description length (default: 500)

  Ledger Configuration:
    WF_LEDGER_OVERTIME_THRESHOLD           Daily overtime threshold in hours (default: 8)
    WF_LEDGER_APPROVER_ROLES               Roles allowed to approve (default: manager,admin)

  Application Configuration:
    WF_APP_TIMEOUT                         Application timeout (default: 60s)
    WF_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  wf [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			root.resolveActor()
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("actor", "", "Acting user id (overrides WF_ACTOR)")
	flags.String("role", "", "Acting role (overrides WF_ROLE)")

	flags.String("db-dir", "", "Database directory (overrides WF_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WF_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WF_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WF_DB_WRITE_TIMEOUT)")

	flags.Float64("overtime-threshold", 0, "Daily overtime threshold in hours (overrides WF_LEDGER_OVERTIME_THRESHOLD)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides WF_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WF_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add PROJECT TASK DATE START END",
		Short: "Add a new time entry",
		Long: `Record a pending time entry for the acting user.

Dates use YYYY-MM-DD and clock times use 24h HH:MM. Worked hours are
derived from the clock times; an end before the start is treated as a
shift crossing midnight.

Examples:
  wf add PROJECT "Fix login flow" 2026-03-02 09:00 17:00
  wf add PROJECT "On-call shift" 2026-03-02 22:00 06:00 billable=false
  wf add PROJECT "Code review" 2026-03-02 14:00 15:30 description="release 1.4"`,
		Args: cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit ID PROJECT TASK DATE START END",
		Short: "Edit a pending time entry",
		Long: `Replace the editable fields of a pending entry you own.

Hours are rederived from the new clock times. Entries that have been
submitted can no longer be edited; rejected entries must be reopened
first.`,
		Args: cobra.MinimumNArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewEditCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [filters]",
		Short: "List time entries",
		Long: `List time entries with optional key=value filters.

Filters: user=, project=, status=, from=, to=
Dates are inclusive and use YYYY-MM-DD.

Examples:
  wf list                                  # List all entries
  wf list status=pending                   # Pending entries only
  wf list from=2026-03-01 to=2026-03-07    # One week
  wf list project=PROJECT status=approved  # Approved entries for a project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	submitCmd := &cobra.Command{
		Use:   "submit FROM TO",
		Short: "Submit pending entries for approval",
		Long: `Move all of your pending entries within an inclusive date range to
submitted. Entries already submitted, approved or rejected are left
untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewSubmitCommand(r.app).Execute(ctx, args)
		},
	}

	approveCmd := &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a submitted entry",
		Long:  "Approve a submitted entry. Requires an approver role (manager or admin by default).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewApproveCommand(r.app).Execute(ctx, args)
		},
	}

	rejectCmd := &cobra.Command{
		Use:   "reject ID REASON",
		Short: "Reject a submitted entry",
		Long:  "Reject a submitted entry with a reason. Requires an approver role.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewRejectCommand(r.app).Execute(ctx, args)
		},
	}

	reopenCmd := &cobra.Command{
		Use:   "reopen ID",
		Short: "Reopen a rejected entry",
		Long:  "Move a rejected entry you own back to pending so it can be corrected and resubmitted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewReopenCommand(r.app).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a pending entry",
		Long: `Delete a pending entry you own.

This operation cannot be undone. Entries that have been submitted can
no longer be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary FROM TO [filters]",
		Short: "Show aggregate hour statistics",
		Long: `Show total, billable, non-billable and overtime hours over an
inclusive date range, with per-weekday and per-project breakdowns.

Filters: user=, project=, status=

Examples:
  wf summary 2026-03-01 2026-03-07
  wf summary 2026-03-01 2026-03-31 project=PROJECT
  wf summary 2026-03-01 2026-03-07 status=approved`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewSummaryCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export format=csv [filters]",
		Short: "Export entries in the specified format",
		Long: `Export time entries in the specified format.

Supported formats:
  csv - Comma-separated values format

Filters: user=, project=, status=, from=, to=

Example:
  wf export format=csv status=approved > approved.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		editCmd,
		listCmd,
		submitCmd,
		approveCmd,
		rejectCmd,
		reopenCmd,
		deleteCmd,
		summaryCmd,
		exportCmd,
	)
}

// commandContext returns a context bounded by the configured application timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if r.config != nil {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// resolveActor picks the acting identity from flags or environment
func (r *RootCommand) resolveActor() {
	flags := r.cmd.PersistentFlags()

	actorID, _ := flags.GetString("actor")
	if actorID == "" {
		actorID = os.Getenv("WF_ACTOR")
	}
	role, _ := flags.GetString("role")
	if role == "" {
		role = os.Getenv("WF_ROLE")
	}

	r.app.SetActor(actorID, role)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if threshold, _ := flags.GetFloat64("overtime-threshold"); threshold > 0 {
		r.config.Ledger.OvertimeThreshold = threshold
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
