package cli

import (
	"context"

	"task-manager/internal/command"
	"task-manager/internal/domain"
)

// DemoCommand walks through a fixed sequence of commands and narrates each effect
type DemoCommand struct {
	app *App
}

// NewDemoCommand creates a new demo command handler
func NewDemoCommand(app *App) *DemoCommand {
	return &DemoCommand{app: app}
}

// Execute runs the demo
func (c *DemoCommand) Execute(ctx context.Context, args []string) error {
	a := c.app
	a.printf("=== Task Management System Demo ===\n\n")

	steps := []func() error{
		c.addTasks,
		c.retrieveTask,
		c.updateTask,
		c.updateMissingTask,
		c.removeTask,
		c.retrieveMissingTask,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return a.errors.Handle("run demo", err)
		}
		if err := step(); err != nil {
			return err
		}
	}

	a.printf("\n=== Demo Complete ===\n")
	a.printf("   %d tasks remain in the registry\n", a.registry.Len())
	return a.printMetrics()
}

func (c *DemoCommand) addTasks() error {
	a := c.app
	a.printf("1. Adding tasks...\n")

	tasks := []domain.Task{
		domain.NewTask("Write documentation", domain.PriorityHigh),
		domain.NewTask("Review pull requests", domain.PriorityMedium),
		domain.NewTask("Update dependencies", domain.PriorityLow),
		domain.NewTask("Fix critical bug", domain.PriorityHigh),
		domain.NewTask("Refactor code", domain.PriorityMedium),
	}
	for _, task := range tasks {
		if err := a.dispatcher.Run(command.NewAddTask(a.registry, task)); err != nil {
			return a.errors.Handle("add task", err)
		}
	}

	a.printf("   Added %d tasks to the registry\n", len(tasks))
	c.showTasks()
	return nil
}

func (c *DemoCommand) retrieveTask() error {
	a := c.app
	a.printf("\n2. Retrieving a specific task...\n")

	task, ok := a.registry.Get("Fix critical bug")
	a.printf("   %s\n", taskLine("Fix critical bug", task, ok))
	return nil
}

func (c *DemoCommand) updateTask() error {
	a := c.app
	a.printf("\n3. Updating a task's priority...\n")
	a.printf("   Changing 'Refactor code' from MEDIUM to HIGH\n")

	if err := a.dispatcher.Run(command.NewUpdateTask(a.registry, "Refactor code", domain.PriorityHigh)); err != nil {
		return a.errors.Handle("update task", err)
	}
	c.showTasks()
	return nil
}

func (c *DemoCommand) updateMissingTask() error {
	a := c.app
	a.printf("\n4. Attempting to update non-existent task...\n")

	err := a.dispatcher.Run(command.NewUpdateTask(a.registry, "Non-existent task", domain.PriorityHigh))
	if err == nil {
		a.printf("   Update unexpectedly succeeded\n")
		return nil
	}
	if !a.errors.IsNotFoundError(err) {
		return a.errors.Handle("update task", err)
	}
	a.printf("   Error (%s): %s\n", a.errors.GetErrorCode(err), a.errors.HandleSimple(err))
	return nil
}

func (c *DemoCommand) removeTask() error {
	a := c.app
	a.printf("\n5. Removing a task...\n")

	if err := a.dispatcher.Run(command.NewRemoveTask(a.registry, "Update dependencies")); err != nil {
		return a.errors.Handle("remove task", err)
	}
	a.printf("   Removed 'Update dependencies'\n")
	c.showTasks()
	return nil
}

func (c *DemoCommand) retrieveMissingTask() error {
	a := c.app
	a.printf("\n6. Attempting to retrieve non-existent task...\n")

	task, ok := a.registry.Get("Non-existent task")
	a.printf("   %s\n", taskLine("Non-existent task", task, ok))
	return nil
}

func (c *DemoCommand) showTasks() {
	c.app.printf("\n   Current tasks in registry:\n")
	c.app.printTasks("     ")
}
