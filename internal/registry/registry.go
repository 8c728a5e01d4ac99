// Package registry holds the in-memory mapping from task name to task.
package registry

import (
	"maps"
	"slices"
	"sync"

	"task-manager/internal/domain"
)

// Registry owns the tasks known to the application, keyed by name.
// At most one task exists per name. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		tasks: make(map[string]domain.Task),
	}
}

// Add stores the task under its name, replacing any task already stored there
func (r *Registry) Add(task domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.Name()] = task
}

// Get returns the task stored under name. The boolean is false when no such task exists.
func (r *Registry) Get(name string) (domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[name]
	return task, ok
}

// Remove deletes the task stored under name. Removing a missing name is a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, name)
}

// GetAll returns a copy of every stored task keyed by name.
// Iteration order of the returned map is unspecified.
func (r *Registry) GetAll() map[string]domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.tasks)
}

// Replace looks up the task stored under name and, if present, stores fn's result in its place.
// The lookup and the write happen under one lock, so no Add or Remove can interleave.
// fn must return a task with the same name; any other name is ignored in favour of name.
func (r *Registry) Replace(name string, fn func(domain.Task) domain.Task) (domain.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[name]
	if !ok {
		return domain.Task{}, false
	}

	next := fn(current)
	if next.Name() != name {
		next = domain.NewTask(name, next.Priority())
	}
	r.tasks[name] = next
	return next, true
}

// Len returns the number of stored tasks
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Names returns the stored task names in ascending order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name := range r.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
