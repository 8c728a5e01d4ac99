package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"task-manager/internal/errors"
	"task-manager/internal/script"
)

// RunCommand executes the commands listed in a YAML script
type RunCommand struct {
	app *App
}

// NewRunCommand creates a new run command handler
func NewRunCommand(app *App) *RunCommand {
	return &RunCommand{app: app}
}

// Execute loads the script named by args[0] and dispatches each step in order
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	a := c.app
	if len(args) != 1 {
		return errors.NewInvalidInputError("script", args, "exactly one script path is required")
	}

	s, err := script.Load(args[0])
	if err != nil {
		return a.errors.Handle("load script", err)
	}
	cmds, err := s.Commands(a.registry)
	if err != nil {
		return a.errors.Handle("load script", err)
	}
	a.logger.Debug("script loaded", zap.String("path", args[0]), zap.Int("steps", len(cmds)))

	failed := 0
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return a.errors.Handle("run script", err)
		}

		err := a.dispatcher.Run(cmd)
		if err == nil {
			a.printf("[%d] %s: ok\n", i+1, describe(cmd))
			continue
		}

		a.printf("[%d] %s: %s\n", i+1, describe(cmd), a.errors.HandleSimple(err))
		if !a.config.Application.ContinueOnError {
			return a.errors.Handle(fmt.Sprintf("run step %d", i+1), err)
		}
		failed++
	}

	a.printf("\nTasks (%d):\n", a.registry.Len())
	a.printTasks("  ")
	if failed > 0 {
		a.printf("\n%d of %d steps failed\n", failed, len(cmds))
	}
	return a.printMetrics()
}
