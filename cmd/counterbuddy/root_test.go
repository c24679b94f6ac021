package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
	"github.com/alexisbeaulieu97/counterbuddy/internal/logger"
)

func stubInteractive(t *testing.T, terminal bool, runner func(*counter.State, *logger.Logger) error) {
	t.Helper()

	originalTerminal := isTerminal
	originalRunner := interactiveRunner
	t.Cleanup(func() {
		isTerminal = originalTerminal
		interactiveRunner = originalRunner
	})

	isTerminal = func() bool { return terminal }
	interactiveRunner = runner
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	stubInteractive(t, false, func(*counter.State, *logger.Logger) error {
		t.Fatal("runner must not start")
		return nil
	})

	_, err := executeRoot(t)
	require.ErrorIs(t, err, errNotTerminal)
}

func TestRootStartsInteractiveSession(t *testing.T) {
	var got *counter.State
	stubInteractive(t, true, func(state *counter.State, _ *logger.Logger) error {
		got = state
		return nil
	})

	_, err := executeRoot(t, "--dark")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.IsDarkMode())
	require.Equal(t, counter.DefaultUpperLimit, got.UpperLimit())
}

func TestRootWrapsRunnerError(t *testing.T) {
	boom := errors.New("boom")
	stubInteractive(t, true, func(*counter.State, *logger.Logger) error {
		return boom
	})

	_, err := executeRoot(t)
	require.ErrorIs(t, err, boom)
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	stubInteractive(t, true, func(*counter.State, *logger.Logger) error { return nil })

	_, err := executeRoot(t, "extra")
	require.Error(t, err)
}

func TestVerboseWritesReadableDebugLog(t *testing.T) {
	original := openLogSink
	t.Cleanup(func() { openLogSink = original })

	buf := &bytes.Buffer{}
	var gotVerbose bool
	openLogSink = func(verbose bool) (io.Writer, func(), error) {
		gotVerbose = verbose
		return buf, func() {}, nil
	}

	_, err := executeRoot(t, "--verbose", "run", "inc")
	require.NoError(t, err)
	require.True(t, gotVerbose)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "INF")
	require.Contains(t, lines[0], "session started")
	require.Contains(t, lines[1], "DBG")
	require.Contains(t, lines[1], "counter command")
	require.Contains(t, lines[1], "action=increment")
	for _, line := range lines {
		require.False(t, json.Valid([]byte(line)))
	}
}
