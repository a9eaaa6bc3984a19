package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"unknown", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input))
	}
}

func TestInit(t *testing.T) {
	// Verify it doesn't panic
	Init(logrus.DebugLevel)
	Debug("test message")
	Info("test message", "key", "value")
	Warn("test message")
	Error("test message", "err", "boom")
}

func TestFields_IgnoresDanglingKey(t *testing.T) {
	f := fields([]interface{}{"a", 1, "b"})
	require.Equal(t, logrus.Fields{"a": 1}, f)
}
