package cli

import (
	"context"
)

// Version is set at build time with -ldflags "-X task-manager/internal/cli.Version=..."
var Version = "dev"

// VersionCommand prints the build version
type VersionCommand struct {
	app *App
}

// NewVersionCommand creates a new version command handler
func NewVersionCommand(app *App) *VersionCommand {
	return &VersionCommand{app: app}
}

// Execute prints the version
func (c *VersionCommand) Execute(ctx context.Context, args []string) error {
	c.app.printf("taskmanager %s\n", Version)
	return nil
}
