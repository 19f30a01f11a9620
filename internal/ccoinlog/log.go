// Package ccoinlog owns the process-wide logging backend and the
// subsystem loggers every other package logs through. Packages that need
// to log declare a package-level btclog.Logger variable (defaulting to
// btclog.Disabled) and a UseLogger/DisableLog pair for the main package
// to wire up at startup, matching how the rest of the btcsuite-style
// codebase avoids an import cycle back into the binary that owns the
// rotator.
package ccoinlog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter sends logging output to both standard output and the
// write-end pipe of the log rotator, if one has been initialized.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	// Backend is the logging backend used to create every subsystem
	// logger. It must not be used for output before InitLogRotator has
	// run, or writes will go to stdout only.
	Backend = btclog.NewBackend(logWriter{})

	// logRotator rolls the on-disk log file. It must be closed on
	// shutdown so buffered output is flushed.
	logRotator *rotator.Rotator

	// ccoindLog is the default logger registered under the root CCOIND
	// tag. A later NewSubsystemLogger("CCOIND") call, as the main package
	// makes, replaces it in subsystemLoggers.
	ccoindLog = Backend.Logger("CCOIND")
)

// subsystemLoggers maps each subsystem tag to its logger so that
// SetLogLevels can walk them uniformly. Packages register their own
// loggers here via RegisterSubsystem at init time.
var subsystemLoggers = map[string]btclog.Logger{
	"CCOIND": ccoindLog,
}

// RegisterSubsystem adds logger under tag so SetLogLevel/SetLogLevels can
// reach it. Called from package init functions, never after startup.
func RegisterSubsystem(tag string, logger btclog.Logger) {
	subsystemLoggers[tag] = logger
}

// NewSubsystemLogger is a convenience wrapper around Backend.Logger that
// also registers the result, for the common case of a package declaring
// one logger for itself.
func NewSubsystemLogger(tag string) btclog.Logger {
	l := Backend.Logger(tag)
	RegisterSubsystem(tag, l)
	return l
}

// InitLogRotator initializes the rotating log file at logFile, rolling
// over at 10 MiB and keeping 3 old versions. It must be called before any
// logger writes if on-disk logging is desired; omitting it leaves logging
// on stdout only, which is fine for tests.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// CloseRotator closes the log rotator, flushing any buffered output. Safe
// to call even if InitLogRotator was never called.
func CloseRotator() {
	if logRotator != nil {
		logRotator.Close()
	}
}

// SetLogLevel sets the logging level for a single registered subsystem.
// Unknown tags are silently ignored; a log-level typo should never fail
// startup.
func SetLogLevel(subsystemTag string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemTag]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets logLevel on every registered subsystem.
func SetLogLevels(logLevel string) {
	for tag := range subsystemLoggers {
		SetLogLevel(tag, logLevel)
	}
}

// SupportedSubsystems returns the tags of every registered subsystem
// logger, for use in config.go's --debuglevel usage string.
func SupportedSubsystems() []string {
	tags := make([]string, 0, len(subsystemLoggers))
	for tag := range subsystemLoggers {
		tags = append(tags, tag)
	}
	return tags
}
