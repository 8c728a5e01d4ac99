package domain

import "fmt"

// Task represents a named unit of work with a priority.
// Task is a value: it has no setters, and changing a field means building a new Task.
type Task struct {
	name     string
	priority Priority
}

// NewTask creates a new Task with the given name and priority.
func NewTask(name string, priority Priority) Task {
	return Task{
		name:     name,
		priority: priority,
	}
}

// Name returns the task name, which identifies the task within a registry.
func (t Task) Name() string {
	return t.name
}

// Priority returns the task priority.
func (t Task) Priority() Priority {
	return t.priority
}

// WithPriority returns a copy of the task with the priority replaced.
func (t Task) WithPriority(priority Priority) Task {
	return Task{
		name:     t.name,
		priority: priority,
	}
}

// IsValid checks if the task has a name and a known priority.
func (t Task) IsValid() bool {
	return t.name != "" && t.priority.IsValid()
}

// String returns the task for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("%s (Priority: %s)", t.name, t.priority)
}
