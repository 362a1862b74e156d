package debug

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable that overrides the log level.
const LevelEnv = "TOURGUIDE_LOG_LEVEL"

var (
	enabled bool
	logFile *os.File
	logger  *logrus.Logger
	mu      sync.Mutex
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if logFile != nil {
		_ = logFile.Close()
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(levelFromEnv())

	logFile = f
	logger = l
	enabled = true

	logger.Debug("Debug logging enabled")
	return nil
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// DefaultPath returns the debug log location under the user cache directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tourguide", "debug.log")
}

// Close closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = nil
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// Fields writes a debug message with structured fields if debugging is enabled.
func Fields(msg string, fields logrus.Fields) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.WithFields(fields).Debug(msg)
}

// Warn writes a warning if debugging is enabled.
func Warn(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.Warnf(format, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}
