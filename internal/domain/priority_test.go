package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_String(t *testing.T) {
	tests := []struct {
		priority Priority
		expected string
	}{
		{PriorityLow, "LOW"},
		{PriorityMedium, "MEDIUM"},
		{PriorityHigh, "HIGH"},
		{Priority(0), "UNKNOWN"},
		{Priority(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.priority.String())
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority(0).IsValid())
	assert.False(t, Priority(4).IsValid())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		wantErr  bool
	}{
		{name: "upper case", input: "HIGH", expected: PriorityHigh},
		{name: "lower case", input: "low", expected: PriorityLow},
		{name: "mixed case with spaces", input: "  Medium ", expected: PriorityMedium},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown priority")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
