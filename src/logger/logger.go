// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations.
// It provides methods for user-facing output and verbosity-gated diagnostics.
//
// This interface supports both CLI and MCP server modes, allowing seamless
// switching between human-readable output and structured logging.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Debugf formats and prints a diagnostic message. Suppressed unless the
	// logger was constructed with verbosity enabled.
	Debugf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
//
// Diagnostics go to stderr so they never interleave with the negotiated
// output format on stdout.
type CLILogger struct {
	logger  *log.Logger
	verbose bool
}

// NewCLILogger creates a new CLI logger with timestamps disabled.
// verbose enables Debugf output (the CLI's -v flag).
func NewCLILogger(verbose bool) *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l, verbose: verbose}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Debugf prints a diagnostic message when verbosity is enabled.
func (c *CLILogger) Debugf(format string, v ...any) {
	if c.verbose {
		c.logger.Printf(format, v...)
	}
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// ZapLogger implements Logger for structured logging in MCP server mode.
// Output is suppressed by default since MCP communication happens over stdio,
// but a writer (typically a log file or stderr) can be supplied to enable
// JSON-encoded entries.
//
// ZapLogger is safe for concurrent use by multiple goroutines.
type ZapLogger struct {
	sugar   *zap.SugaredLogger
	verbose bool
}

// NewZapLogger creates a new structured logger writing JSON entries to w.
// A nil writer yields a silent logger, keeping the MCP stdio channel clean.
func NewZapLogger(w io.Writer, verbose bool) *ZapLogger {
	if w == nil {
		w = io.Discard
	}
	return &ZapLogger{sugar: newZapSugar(w, verbose), verbose: verbose}
}

func newZapSugar(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Sugar()
}

// Printf formats and logs a structured message at info level.
func (z *ZapLogger) Printf(format string, v ...any) { z.sugar.Infof(format, v...) }

// Println logs a structured message at info level.
func (z *ZapLogger) Println(v ...any) { z.sugar.Info(v...) }

// Debugf logs a structured message at debug level. The zap core drops it
// unless the logger was constructed with verbosity enabled.
func (z *ZapLogger) Debugf(format string, v ...any) { z.sugar.Debugf(format, v...) }

// SetOutput replaces the output destination, rebuilding the zap core.
// A nil writer silences the logger.
func (z *ZapLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	z.sugar = newZapSugar(w, z.verbose)
}
