package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	app       *App
	newLogger func(config.LoggingConfig) (*zap.Logger, error)
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config:    cfg,
		newLogger: logging.New,
	}

	root.cmd = &cobra.Command{
		Use:   "taskmanager",
		Short: "Manage an in-memory task registry through commands",
		Long: `taskmanager keeps named tasks with a priority (LOW, MEDIUM, HIGH) in memory
and changes them only through add, remove and update commands.

EXAMPLES:
  taskmanager demo                          # Narrated walkthrough of every command
  taskmanager run steps.yaml                # Run the commands listed in a script
  taskmanager run steps.yaml --metrics      # ...and print command counters afterwards

SCRIPT FORMAT:
  steps:
    - op: add
      name: Write docs
      priority: high
    - op: update
      name: Write docs
      priority: low
    - op: remove
      name: Write docs

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TM_DEBUG                 Development logging at debug level (default: false)
    TM_LOG_LEVEL             Log level: debug, info, warn, error (default: info)
    TM_LOG_FORMAT            Log format: console, json (default: console)
    TM_METRICS_ENABLED       Print command metrics after a run (default: false)
    TM_METRICS_NAMESPACE     Metrics namespace (default: taskmanager)
    TM_APP_TIMEOUT           Application timeout (default: 60s)
    TM_CONTINUE_ON_ERROR     Keep running a script after a failed step (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if root.app != nil {
				_ = root.app.logger.Sync()
			}
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

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Logging configuration
	flags.Bool("debug", false, "Enable development logging (overrides TM_DEBUG)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: console or json (overrides TM_LOG_FORMAT)")

	// Metrics configuration
	flags.Bool("metrics", false, "Print command metrics after running (overrides TM_METRICS_ENABLED)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("continue-on-error", false, "Keep running a script after a failed step (overrides TM_CONTINUE_ON_ERROR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a narrated demonstration",
		Long: `Add five tasks, look one up, raise a priority, try to update a task that
does not exist, remove a task and look up a missing one, printing each effect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "demo", args)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run the commands listed in a YAML script",
		Long: `Run the commands listed in a YAML script against an empty registry.

Each step prints one line. Updating a task that does not exist stops the
script unless --continue-on-error is set. The remaining tasks are listed at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "run", args)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "version", args)
		},
	}

	r.cmd.AddCommand(
		demoCmd,
		runCmd,
		versionCmd,
	)
}

// run executes a registered command under the configured application timeout
func (r *RootCommand) run(cmd *cobra.Command, name string, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Application.Timeout)
	defer cancel()

	return r.app.Run(ctx, append([]string{name}, args...))
}

// setup applies flag overrides, then builds the logger and the application
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	r.overridesFromFlags().Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := r.newLogger(r.config.Logging)
	if err != nil {
		return err
	}

	app, err := NewApp(r.config, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	r.app = app
	return nil
}

// overridesFromFlags collects the flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		overrides.LogFormat = &v
	}
	if flags.Changed("metrics") {
		v, _ := flags.GetBool("metrics")
		overrides.MetricsEnabled = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("continue-on-error") {
		v, _ := flags.GetBool("continue-on-error")
		overrides.ContinueOnError = &v
	}

	return overrides
}
