package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Info("found %d weeks", 3)
	l.Debug("hidden")
	l.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "[INFO] found 3 weeks")
	assert.Contains(t, out, "[ERROR] boom")
	assert.NotContains(t, out, "hidden")
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("nothing") })
}
