// Package logger is yavoy's leveled printf logger.
//
// Output goes nowhere until a log file is set through YAVOY_LOG_FILE or
// log_file in the config: the wizard draws on the terminal, so log lines
// there would corrupt the screen.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Environment variables read by New.
const (
	EnvLevel = "YAVOY_LOG_LEVEL"
	EnvFile  = "YAVOY_LOG_FILE"
)

// Level orders log records by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel accepts a level name in any case; "warning" is an alias for warn.
// Unknown names return LevelInfo with an error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for lvl, n := range levelNames {
		if n == name {
			return Level(lvl), nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level: %s", s)
}

// Logger writes "[LEVEL] message" lines at or above its level.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// Default backs the package-level functions.
var Default = New()

// New returns a logger configured from YAVOY_LOG_LEVEL and YAVOY_LOG_FILE.
// Bad values are ignored rather than reported; the config file gets a second
// chance through Configure.
func New() *Logger {
	l := &Logger{
		level: LevelInfo,
		out:   log.New(io.Discard, "", log.LstdFlags),
	}
	if lvl, err := ParseLevel(os.Getenv(EnvLevel)); err == nil {
		l.level = lvl
	}
	_ = l.Configure("", os.Getenv(EnvFile))
	return l
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Configure sets the level and log file. Empty values keep the current setting.
// A previously opened log file is closed when replaced.
func (l *Logger) Configure(level, file string) error {
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
	}
	if file == "" {
		return nil
	}

	f, err := openLogFile(file)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.out.SetOutput(f)
	return nil
}

// Close releases the log file and goes back to discarding output.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out.SetOutput(io.Discard)
	return err
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetOutput redirects output to w, e.g. a buffer in tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out.SetOutput(w)
	l.mu.Unlock()
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) { Default.Debug(format, v...) }
func Info(format string, v ...interface{})  { Default.Info(format, v...) }
func Warn(format string, v ...interface{})  { Default.Warn(format, v...) }
func Error(format string, v ...interface{}) { Default.Error(format, v...) }

// Configure applies config file settings to Default.
func Configure(level, file string) error { return Default.Configure(level, file) }

// Close closes Default's log file, if any.
func Close() error { return Default.Close() }
