package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/counterbuddy/internal/config"
	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
	"github.com/alexisbeaulieu97/counterbuddy/internal/logger"
)

const logFileName = "counterbuddy.log"

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), logFileName)
}

// openLogSink returns where log output goes. Without --verbose the logs are
// discarded because the terminal belongs to the UI.
var openLogSink = func(verbose bool) (io.Writer, func(), error) {
	if !verbose {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(defaultLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func newSessionID() string {
	return uuid.New().String()[:8]
}

// prepareSession loads settings and builds the state and logger shared by the
// interactive and scripted entry points.
func prepareSession(flags *rootFlags) (*counter.State, *logger.Logger, func(), error) {
	sink, closeSink, err := openLogSink(flags.verbose)
	if err != nil {
		return nil, nil, nil, err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.verbose,
		Writer:        sink,
		Fields:        map[string]any{"session": newSessionID()},
	})
	if err != nil {
		closeSink()
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	settings, err := config.LoadSettings(flags.configPath)
	if err != nil {
		log.Error(err, "failed to load settings")
		closeSink()
		return nil, nil, nil, err
	}
	if flags.dark {
		settings.DarkMode = true
	}

	log.WithFields(map[string]any{
		"config":         flags.configPath,
		"step":           settings.Step,
		"upper_limit":    settings.UpperLimit,
		"lower_limit":    settings.LowerLimit,
		"allow_negative": settings.AllowNegative,
		"dark_mode":      settings.DarkMode,
	}).Info("session started")

	return counter.NewWithSettings(settings.Counter()), log, closeSink, nil
}
