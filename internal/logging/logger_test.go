package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"task-manager/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.LoggingConfig
		debugEnabled bool
		infoEnabled  bool
		wantErr      bool
	}{
		{
			name:         "debug mode enables debug level",
			cfg:          config.LoggingConfig{Debug: true, Level: "error", Format: "json"},
			debugEnabled: true,
			infoEnabled:  true,
		},
		{
			name:        "info level json",
			cfg:         config.LoggingConfig{Level: "info", Format: "json"},
			infoEnabled: true,
		},
		{
			name: "warn level console",
			cfg:  config.LoggingConfig{Level: "warn", Format: "console"},
		},
		{
			name:    "invalid level",
			cfg:     config.LoggingConfig{Level: "loud", Format: "json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.debugEnabled, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoEnabled, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	logger := Nop()
	assert.Same(t, logger, OrNop(logger))
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
