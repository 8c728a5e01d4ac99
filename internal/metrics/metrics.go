// Package metrics records command dispatch statistics with Prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	apperrors "task-manager/internal/errors"
)

// OutcomeOK is the outcome label for commands that returned no error
const OutcomeOK = "ok"

// Recorder counts dispatched commands by kind and outcome.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a recorder and registers its collectors with reg
func New(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Number of dispatched commands by command kind and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent executing dispatched commands.",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01},
		}, []string{"command"}),
	}

	for _, c := range []prometheus.Collector{r.commands, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics collector: %w", err)
		}
	}
	return r, nil
}

// ObserveCommand records one dispatch of the named command kind
func (r *Recorder) ObserveCommand(kind string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(kind, Outcome(err)).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Outcome maps an execution error to its outcome label
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Type.String()
	}
	return "error"
}

// WriteText writes every metric family gathered from g in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
