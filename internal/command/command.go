// Package command implements the commands that mutate a task registry and
// the dispatcher that runs them.
//
// The set of commands is closed: Command has an unexported method, so only
// this package can implement it. Dispatch goes through Visitor, which has one
// method per command. Adding a command means adding a Visitor method, and every
// Visitor implementation then fails to compile until it handles the new command.
package command

import (
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/registry"
)

// Kind names a command variant
type Kind string

const (
	KindAdd    Kind = "add"
	KindRemove Kind = "remove"
	KindUpdate Kind = "update"
)

// Command is a deferred effect bound to a registry and its arguments
type Command interface {
	// Execute applies the effect to the registry the command was built with
	Execute() error
	// Accept calls the Visitor method for the concrete command
	Accept(v Visitor) error
	// Kind returns the command variant
	Kind() Kind

	sealed()
}

// Visitor handles every command variant
type Visitor interface {
	VisitAddTask(c *AddTask) error
	VisitRemoveTask(c *RemoveTask) error
	VisitUpdateTask(c *UpdateTask) error
}

// AddTask stores a task, replacing any task with the same name
type AddTask struct {
	registry *registry.Registry
	task     domain.Task
}

// NewAddTask creates a command that adds task to reg
func NewAddTask(reg *registry.Registry, task domain.Task) *AddTask {
	return &AddTask{registry: reg, task: task}
}

// Task returns the task the command adds
func (c *AddTask) Task() domain.Task { return c.task }

// Execute adds the task. It never fails.
func (c *AddTask) Execute() error {
	c.registry.Add(c.task)
	return nil
}

func (c *AddTask) Accept(v Visitor) error { return v.VisitAddTask(c) }
func (c *AddTask) Kind() Kind             { return KindAdd }
func (c *AddTask) sealed()                {}

// RemoveTask deletes a task by name
type RemoveTask struct {
	registry *registry.Registry
	name     string
}

// NewRemoveTask creates a command that removes the task called name from reg
func NewRemoveTask(reg *registry.Registry, name string) *RemoveTask {
	return &RemoveTask{registry: reg, name: name}
}

// Name returns the name of the task to remove
func (c *RemoveTask) Name() string { return c.name }

// Execute removes the task. A missing task is not an error.
func (c *RemoveTask) Execute() error {
	c.registry.Remove(c.name)
	return nil
}

func (c *RemoveTask) Accept(v Visitor) error { return v.VisitRemoveTask(c) }
func (c *RemoveTask) Kind() Kind             { return KindRemove }
func (c *RemoveTask) sealed()                {}

// UpdateTask changes the priority of an existing task
type UpdateTask struct {
	registry *registry.Registry
	name     string
	priority domain.Priority
}

// NewUpdateTask creates a command that sets the priority of the task called name in reg
func NewUpdateTask(reg *registry.Registry, name string, priority domain.Priority) *UpdateTask {
	return &UpdateTask{registry: reg, name: name, priority: priority}
}

// Name returns the name of the task to update
func (c *UpdateTask) Name() string { return c.name }

// Priority returns the new priority
func (c *UpdateTask) Priority() domain.Priority { return c.priority }

// Execute replaces the task with a copy carrying the new priority.
// If no task has the name, it returns a task not found error and the registry is untouched.
func (c *UpdateTask) Execute() error {
	_, ok := c.registry.Replace(c.name, func(current domain.Task) domain.Task {
		return current.WithPriority(c.priority)
	})
	if !ok {
		return errors.NewTaskNotFoundError(c.name)
	}
	return nil
}

func (c *UpdateTask) Accept(v Visitor) error { return v.VisitUpdateTask(c) }
func (c *UpdateTask) Kind() Kind             { return KindUpdate }
func (c *UpdateTask) sealed()                {}
