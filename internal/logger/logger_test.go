package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"action": "increment", "count": 3})
	log.Info("command applied")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "command applied", entry["message"])
	require.Equal(t, "increment", entry["action"])
	require.EqualValues(t, 3, entry["count"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerOptionFieldsOnEveryEntry(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, Fields: map[string]any{"session": "ab12cd34"}})
	require.NoError(t, err)

	log.Debug("first")
	log.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Equal(t, "ab12cd34", entry["session"])
	}
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "counter.yaml"})
	log.Error(errors.New("boom"), "failed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "counter.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("ready")
	require.Contains(t, buf.String(), "ready")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Debug("x")
		nilLogger.Error(errors.New("x"), "x")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})

	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"a": 1}).Info("discarded")
	})
}
