package command

import (
	"time"

	"go.uber.org/zap"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/metrics"
)

// Dispatcher runs commands. It implements Visitor, so it handles every command variant.
type Dispatcher struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
}

var _ Visitor = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. Both arguments may be nil.
func NewDispatcher(logger *zap.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{
		logger:  logging.OrNop(logger),
		metrics: recorder,
	}
}

// Run executes cmd and returns its error unchanged
func (d *Dispatcher) Run(cmd Command) error {
	if cmd == nil {
		return errors.NewInvalidInputError("command", nil, "command is nil")
	}

	start := time.Now()
	err := cmd.Accept(d)
	d.metrics.ObserveCommand(string(cmd.Kind()), time.Since(start), err)

	if err != nil {
		fields := []zap.Field{
			zap.String("command", string(cmd.Kind())),
			zap.String("code", errors.GetErrorCode(err)),
			zap.Error(err),
		}
		if errors.ShouldLogError(err) {
			d.logger.Error("command failed", fields...)
		} else {
			d.logger.Debug("command rejected", fields...)
		}
	}
	return err
}

func (d *Dispatcher) VisitAddTask(c *AddTask) error {
	d.logger.Debug("adding task",
		zap.String("task", c.task.Name()),
		zap.Stringer("priority", c.task.Priority()))
	return c.Execute()
}

func (d *Dispatcher) VisitRemoveTask(c *RemoveTask) error {
	d.logger.Debug("removing task", zap.String("task", c.name))
	return c.Execute()
}

func (d *Dispatcher) VisitUpdateTask(c *UpdateTask) error {
	d.logger.Debug("updating task priority",
		zap.String("task", c.name),
		zap.Stringer("priority", c.priority))
	return c.Execute()
}
