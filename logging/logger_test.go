package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSlogLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Output: &buf})
	logger.Debug("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")
}

func TestNewSlogLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogLogger(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})
	logger.Info("event", "user_id", "traveler")

	out := buf.String()
	assert.Contains(t, out, `"msg":"event"`)
	assert.Contains(t, out, `"user_id":"traveler"`)
}

func TestNewSlogLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogLogger(Config{Level: LevelWarn, Format: FormatText, Output: &buf})
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	assert.NotPanics(t, func() {
		logger.Debug("a")
		logger.Info("b")
		logger.Warn("c")
		logger.Error("d")
	})
}

func TestAdvisorLoggerContextualAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	logger := NewAdvisorLogger(base).WithComponent("orchestrator").WithUser("traveler")
	logger.Info("dispatch", "delegates", 2)

	out := buf.String()
	assert.Contains(t, out, "component=orchestrator")
	assert.Contains(t, out, "user_id=traveler")
	assert.Contains(t, out, "delegates=2")
}

func TestAdvisorLoggerWithIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	root := NewAdvisorLogger(base)
	root.WithComponent("driver")
	root.Info("plain")

	assert.NotContains(t, buf.String(), "component=driver")
}

func TestAdvisorLoggerNilBase(t *testing.T) {
	logger := NewAdvisorLogger(nil)

	assert.NotPanics(t, func() {
		logger.WithTurn("turn-1").Info("no sink")
	})
}

func TestLogToolCall(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Output: &buf})
	logger := NewAdvisorLogger(base)

	logger.LogToolCall("search_attractions", 10*time.Millisecond, nil)
	logger.LogToolCall("make_booking_reminder", 5*time.Millisecond, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "tool call completed")
	assert.Contains(t, lines[1], "tool call failed")
	assert.Contains(t, lines[1], "error=boom")
}

func TestLogTurn(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Output: &buf})
	logger := NewAdvisorLogger(base)

	logger.LogTurn("turn-7", 2*time.Second, nil)

	out := buf.String()
	assert.Contains(t, out, "turn completed")
	assert.Contains(t, out, "turn_id=turn-7")
}
