package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectedError bool
	}{
		{name: "info", level: "info", expectedLevel: zapcore.InfoLevel},
		{name: "debug upper case", level: "DEBUG", expectedLevel: zapcore.DebugLevel},
		{name: "warn with spaces", level: " warn ", expectedLevel: zapcore.WarnLevel},
		{name: "invalid level", level: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, Logger)
			assert.True(t, Logger.Core().Enabled(tt.expectedLevel))
			assert.False(t, Logger.Core().Enabled(tt.expectedLevel-1))
		})
	}
}
