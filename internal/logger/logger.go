// Package logger configures the process-wide charmbracelet logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger. Component loggers derive from it.
var Logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat("")
	l.SetLevel(level)
	return l
}

// Configure sets the level and destination of the global logger. The level
// falls back to RISDOCS_LOG_LEVEL and then to info. An empty file keeps stderr.
func Configure(level, file string) error {
	if level == "" {
		level = os.Getenv("RISDOCS_LOG_LEVEL")
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		out = f
	}
	Logger = newLogger(out, lvl)
	return nil
}

// Discard silences all logging, for full-screen UIs without a log file.
func Discard() {
	Logger = newLogger(io.Discard, log.FatalLevel)
}

// ParseLevel converts debug|info|warn|error ("" means info).
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// New returns a component logger tagged with prefix.
func New(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}

func Debug(msg interface{}, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { Logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { Logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }
