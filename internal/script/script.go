// Package script reads YAML files describing a sequence of task commands.
package script

import (
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"task-manager/internal/command"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/registry"
)

// Step is one command in a script
type Step struct {
	Op       string  `yaml:"op"`
	Name     *string `yaml:"name"`
	Priority string  `yaml:"priority,omitempty"`
}

// Script is a parsed command script
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("script", path)
		}
		return nil, pkgerrors.Wrapf(err, "read script %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, pkgerrors.WithMessagef(err, "script %s", path)
	}
	return s, nil
}

// Parse decodes a script and checks every step
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, pkgerrors.Wrap(err, "decode script")
	}
	if len(s.Steps) == 0 {
		return nil, errors.NewInvalidInputError("steps", nil, "script has no steps")
	}
	for i, step := range s.Steps {
		if _, err := step.check(); err != nil {
			err.Message = fmt.Sprintf("step %d: %s", i+1, err.Message)
			return nil, err.WithContext("step", i+1)
		}
	}
	return &s, nil
}

// Commands builds one command per step, bound to reg
func (s *Script) Commands(reg *registry.Registry) ([]command.Command, error) {
	cmds := make([]command.Command, 0, len(s.Steps))
	for i, step := range s.Steps {
		cmd, err := step.Command(reg)
		if err != nil {
			return nil, pkgerrors.WithMessagef(err, "step %d", i+1)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Command builds the command described by the step
func (st Step) Command(reg *registry.Registry) (command.Command, error) {
	kind, err := st.check()
	if err != nil {
		return nil, err
	}

	switch kind {
	case command.KindAdd:
		p, _ := domain.ParsePriority(st.Priority)
		return command.NewAddTask(reg, domain.NewTask(*st.Name, p)), nil
	case command.KindRemove:
		return command.NewRemoveTask(reg, *st.Name), nil
	case command.KindUpdate:
		p, _ := domain.ParsePriority(st.Priority)
		return command.NewUpdateTask(reg, *st.Name, p), nil
	}
	return nil, errors.NewInvalidInputError("op", st.Op, "unknown operation")
}

// check validates the step shape and returns its command kind
func (st Step) check() (command.Kind, *errors.AppError) {
	kind := command.Kind(strings.ToLower(strings.TrimSpace(st.Op)))
	switch kind {
	case command.KindAdd, command.KindRemove, command.KindUpdate:
	default:
		return "", errors.NewInvalidInputError("op", st.Op, fmt.Sprintf("unknown operation %q (want add, remove or update)", st.Op))
	}

	if st.Name == nil {
		return "", errors.NewInvalidInputError("name", nil, "name is required")
	}

	if kind == command.KindRemove {
		return kind, nil
	}
	if _, err := domain.ParsePriority(st.Priority); err != nil {
		return "", errors.NewInvalidInputError("priority", st.Priority, err.Error())
	}
	return kind, nil
}
