// Package logging provides structured logging utilities.
package logging

import (
	"os"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile is where run logs are appended unless configured otherwise.
const DefaultLogFile = "electriflex_gloves.log"

var (
	// Logger is the global logger instance
	Logger *zap.Logger

	// Sugar is the sugared logger for convenience
	Sugar *zap.SugaredLogger

	// helper backs Debug/Info/Warn/Error
	helper *zap.Logger

	logFile *os.File
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level" yaml:"level"`

	// Format is the output format (json, console)
	Format string `json:"format" yaml:"format"`

	// Output is the console destination (stdout, stderr, none)
	Output string `json:"output" yaml:"output"`

	// File is an additional log file; empty disables it
	File string `json:"file" yaml:"file"`

	// Development enables development mode
	Development bool `json:"development" yaml:"development"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Output:      "stderr",
		File:        DefaultLogFile,
		Development: false,
	}
}

// Initialize sets up the global logger. Console and file outputs share the
// level; the file uses the same encoding as the console, without color codes.
// On error the previous logger and log file stay in place.
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	if out := consoleOutput(cfg.Output); out != nil {
		consoleConfig := encoderConfig
		var encoder zapcore.Encoder
		if cfg.Format == "console" {
			if colorEnabled(out) {
				consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			} else {
				consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			}
			encoder = zapcore.NewConsoleEncoder(consoleConfig)
		} else {
			encoder = zapcore.NewJSONEncoder(consoleConfig)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(out), level))
	}

	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		fileConfig := encoderConfig
		fileConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		var encoder zapcore.Encoder
		if cfg.Format == "json" {
			encoder = zapcore.NewJSONEncoder(fileConfig)
		} else {
			encoder = zapcore.NewConsoleEncoder(fileConfig)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	core := zapcore.NewTee(cores...)

	var logger *zap.Logger
	if cfg.Development {
		logger = zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}

	if Logger != nil {
		_ = Logger.Sync()
	}
	setLogger(logger)
	closeFile()
	logFile = file
	return nil
}

// setLogger installs l globally. The package-level helpers skip their own
// frame so entries report the caller's file and line.
func setLogger(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
	helper = l.WithOptions(zap.AddCallerSkip(1))
}

func consoleOutput(output string) *os.File {
	switch output {
	case "stdout":
		return os.Stdout
	case "none":
		return nil
	default:
		return os.Stderr
	}
}

// colorEnabled reports whether f is a terminal that accepts colors,
// honoring NO_COLOR and CLICOLOR_FORCE.
func colorEnabled(f *os.File) bool {
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

func closeFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// InitializeNop installs a logger that discards everything.
func InitializeNop() {
	setLogger(zap.NewNop())
	closeFile()
}

// Sync flushes the logger and closes the log file
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
	closeFile()
}

// With returns a logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	helper.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	helper.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	helper.Warn(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	helper.Error(msg, fields...)
}

func init() {
	// No file until a command asks for one; importing the package must not
	// create electriflex_gloves.log in the working directory.
	cfg := DefaultConfig()
	cfg.File = ""
	_ = Initialize(cfg)
}
