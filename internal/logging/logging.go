package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/handiism/photo-organizer/internal/organizer"
)

// New returns a logger writing to logFile, or to stderr when logFile is
// empty. The level is Debug when verbose or dryRun is set, Info otherwise.
//
// The returned func closes the log file and is safe to call when logging
// to stderr.
func New(logFile string, verbose, dryRun bool) (*logrus.Logger, func() error, error) {
	return newWithStderr(logFile, verbose, dryRun, os.Stderr)
}

func newWithStderr(logFile string, verbose, dryRun bool, stderr io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: logFile != ""})

	if verbose || dryRun {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if logFile == "" {
		logger.SetOutput(stderr)
		return logger, func() error { return nil }, nil
	}

	f, err := os.Create(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create log file %s: %w", logFile, err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

// Sink returns a progress callback that writes each event to logger.
func Sink(logger logrus.FieldLogger) func(organizer.ProgressEvent) {
	return func(event organizer.ProgressEvent) {
		entry := logger
		if event.Total > 0 {
			entry = logger.WithFields(logrus.Fields{
				"processed": event.Processed,
				"total":     event.Total,
			})
		}

		switch event.Level {
		case organizer.LevelVerbose:
			entry.Debug(event.Message)
		case organizer.LevelWarning:
			entry.Warn(event.Message)
		case organizer.LevelError:
			entry.Error(event.Message)
		default:
			entry.Info(event.Message)
		}
	}
}
