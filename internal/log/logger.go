package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Xunop/amana-bookstore/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a no-op until Init is called, so packages can log from tests.
var Logger = zap.NewNop()

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Fallback writes to the standard streams, for use before Init.
func Fallback(level string, msg string) {
	switch level {
	case "Error":
		fmt.Fprintln(os.Stderr, msg)
	case "Debug":
		if config.Opts != nil && config.Opts.LogLevel == "debug" {
			fmt.Fprintln(os.Stdout, msg)
		}
	default:
		fmt.Fprintln(os.Stdout, msg)
	}
}

// Init replaces Logger with one built from opts.
func Init(opts *config.Options) {
	Logger = NewLogger(opts)
}

// Sync flushes buffered entries. Errors from syncing stdout are ignored.
func Sync() {
	_ = Logger.Sync()
}

func NewLogger(opts *config.Options) *zap.Logger {
	rotationLog := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogFileMaxSize, // megabytes
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge, // days
		Compress:   opts.LogCompress,
	}

	return newZap(os.Stdout, rotationLog, parseLevel(opts.LogLevel))
}

// NewRequestLog returns the append-only writer behind the request side log.
// It shares the rotation settings of the application log.
func NewRequestLog(opts *config.Options) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   opts.RequestLogFile,
		MaxSize:    opts.LogFileMaxSize,
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge,
		Compress:   opts.LogCompress,
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZap(console io.Writer, rotationLog io.Writer, level zapcore.Level) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileEncoder := zapcore.NewJSONEncoder(encodeConfig)
	consoleEncoder := zapcore.NewConsoleEncoder(encodeConfig)

	consoleWriter := zapcore.AddSync(console)
	rotationWrite := zapcore.AddSync(rotationLog)

	consoleCore := zapcore.NewCore(consoleEncoder, consoleWriter, level)
	rotationCore := zapcore.NewCore(fileEncoder, rotationWrite, level)

	core := zapcore.NewTee(consoleCore, rotationCore)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}
