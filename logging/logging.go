package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	WarningLogger *log.Logger
	DebugLogger   *log.Logger

	mu       sync.Mutex
	minLevel = INFO
	rotator  *lumberjack.Logger
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel maps a configuration string to a LogLevel. Unknown values map to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warning", "warn":
		return WARNING
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type LogConfig struct {
	LogDir     string
	MaxSizeMB  int // Maximum size of a log file before rotation
	MaxBackups int // Maximum number of old log files to retain
	MaxAgeDays int
	LogLevel   LogLevel
	// Console mirrors every line to stderr.
	Console bool
}

func init() {
	InitFallbackConsoleLogging()
}

// InitLogging points every logger at a rotating file in config.LogDir.
func InitLogging(config *LogConfig) error {
	if config == nil {
		config = &LogConfig{
			LogDir:     "logs",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 28,
			LogLevel:   INFO,
		}
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogDir, "testmaster.log"),
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   true,
	}

	var out io.Writer = w
	if config.Console {
		out = io.MultiWriter(w, os.Stderr)
	}

	mu.Lock()
	defer mu.Unlock()
	if rotator != nil {
		rotator.Close()
	}
	rotator = w
	setOutputs(out, config.LogLevel)

	return nil
}

// InitFallbackConsoleLogging sends all log output to stderr. Used before the
// configuration is loaded and by tests.
func InitFallbackConsoleLogging() {
	mu.Lock()
	defer mu.Unlock()
	setOutputs(os.Stderr, INFO)
}

// SetOutput redirects every logger to w at the given level, replacing any
// earlier console or file output. The rotating file, if open, stays open
// until Close.
func SetOutput(w io.Writer, level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	setOutputs(w, level)
}

// Close flushes and closes the rotating log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func setOutputs(out io.Writer, level LogLevel) {
	flags := log.Ldate | log.Ltime | log.LUTC
	minLevel = level

	writerFor := func(l LogLevel) io.Writer {
		if l < level {
			return io.Discard
		}
		return out
	}

	DebugLogger = log.New(writerFor(DEBUG), "DEBUG: ", flags)
	InfoLogger = log.New(writerFor(INFO), "INFO: ", flags)
	WarningLogger = log.New(writerFor(WARNING), "WARNING: ", flags)
	ErrorLogger = log.New(writerFor(ERROR), "ERROR: ", flags)
}

// Enabled reports whether messages at level are written.
func Enabled(level LogLevel) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= minLevel
}

// Log formats and writes log messages with source file information
func Log(level LogLevel, format string, v ...interface{}) {
	_, file, line, _ := runtime.Caller(1)
	message := fmt.Sprintf("%s:%d: %s", filepath.Base(file), line, fmt.Sprintf(format, v...))

	switch level {
	case DEBUG:
		DebugLogger.Output(2, message)
	case INFO:
		InfoLogger.Output(2, message)
	case WARNING:
		WarningLogger.Output(2, message)
	case ERROR:
		ErrorLogger.Output(2, message)
	}
}
