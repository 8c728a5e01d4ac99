package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"task-manager/internal/command"
	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/metrics"
	"task-manager/internal/registry"
)

// App represents the main CLI application
type App struct {
	config     *config.Config
	logger     *zap.Logger
	registry   *registry.Registry
	dispatcher *command.Dispatcher
	gatherer   prometheus.Gatherer
	out        io.Writer
	errors     *ErrorHandler
	commands   *CommandRegistry
}

// NewApp creates a new CLI application with an empty task registry.
// Narration is written to out; logs go to logger.
func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	logger = logging.OrNop(logger)

	var recorder *metrics.Recorder
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		promReg := prometheus.NewRegistry()
		r, err := metrics.New(cfg.Metrics.Namespace, promReg)
		if err != nil {
			return nil, fmt.Errorf("failed to set up metrics: %w", err)
		}
		recorder, gatherer = r, promReg
	}

	app := &App{
		config:     cfg,
		logger:     logger,
		registry:   registry.New(),
		dispatcher: command.NewDispatcher(logger, recorder),
		gatherer:   gatherer,
		out:        out,
		errors:     NewErrorHandler(),
	}
	app.commands = NewCommandRegistry(app)
	return app, nil
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.commands.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	a.logger.Debug("running cli command", zap.String("command", commandName), zap.Strings("args", commandArgs))
	return a.commands.Execute(ctx, commandName, commandArgs)
}

// printf writes narration; write errors on the output stream are ignored like fmt.Printf would
func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// printTasks lists the registry contents sorted by name
func (a *App) printTasks(indent string) {
	names := a.registry.Names()
	if len(names) == 0 {
		a.printf("%s(no tasks)\n", indent)
		return
	}
	for _, name := range names {
		if task, ok := a.registry.Get(name); ok {
			a.printf("%s- %s\n", indent, task)
		}
	}
}

// printMetrics writes the command counters when metrics are enabled
func (a *App) printMetrics() error {
	if a.gatherer == nil {
		return nil
	}
	a.printf("\n")
	return metrics.WriteText(a.out, a.gatherer)
}

// narrator renders commands for narration. As a Visitor it must handle every command kind.
type narrator struct {
	text string
}

func (n *narrator) VisitAddTask(c *command.AddTask) error {
	n.text = fmt.Sprintf("add %q (%s)", c.Task().Name(), c.Task().Priority())
	return nil
}

func (n *narrator) VisitRemoveTask(c *command.RemoveTask) error {
	n.text = fmt.Sprintf("remove %q", c.Name())
	return nil
}

func (n *narrator) VisitUpdateTask(c *command.UpdateTask) error {
	n.text = fmt.Sprintf("update %q (%s)", c.Name(), c.Priority())
	return nil
}

func describe(cmd command.Command) string {
	var n narrator
	_ = cmd.Accept(&n)
	return n.text
}

// taskLine renders a task lookup result
func taskLine(name string, task domain.Task, ok bool) string {
	if !ok {
		return fmt.Sprintf("Task '%s' not found", name)
	}
	return fmt.Sprintf("Found: %s", task)
}
