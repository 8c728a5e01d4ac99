package domain

import (
	"fmt"
	"strings"
)

// Priority classifies how urgent a task is.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// String returns the upper-case name of the priority
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority parses a priority name, ignoring case and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (want LOW, MEDIUM or HIGH)", s)
	}
}
