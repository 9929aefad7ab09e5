package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"bitbucket.org/kleinnic74/glplayground/consts"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const (
	loggerKey = loggerKeyType("logger")

	logFileName    = "glplayground.log.json"
	memoryLogLines = 1000
)

var (
	rootLogger *zap.Logger
	memory     *memoryLogs
)

func init() {
	devmode := consts.IsDevMode()
	var file zapcore.WriteSyncer
	logfile, err := os.OpenFile(logFileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s, logging to console only: %s\n", logFileName, err)
	} else {
		file = zapcore.Lock(logfile)
	}
	memory = NewMemoryLogger(memoryLogLines).(*memoryLogs)

	rootLogger = zap.New(zapcore.NewTee(newCores(devmode, zapcore.Lock(os.Stderr), file, memory)...))
	rootLogger.With(zap.Bool("devmode", devmode)).Debug("Logging initialized")
}

// newCores builds the cores of the root logger. The console only gets a core
// in dev mode or when there is no log file to write to.
func newCores(devmode bool, console, file, mem zapcore.WriteSyncer) []zapcore.Core {
	debugFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.DebugLevel
	})
	infoFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.InfoLevel
	})

	var jsonEncoder zapcore.Encoder
	var fileFilter zap.LevelEnablerFunc
	if devmode {
		jsonEncoder = zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		fileFilter = debugFilter
	} else {
		jsonEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		fileFilter = infoFilter
	}
	var cores []zapcore.Core
	if devmode || file == nil {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(consoleEncoder, console, fileFilter))
	}
	if file != nil {
		cores = append(cores, zapcore.NewCore(jsonEncoder, file, fileFilter))
	}
	if mem != nil {
		cores = append(cores, zapcore.NewCore(jsonEncoder, mem, fileFilter))
	}
	return cores
}

// Dump writes the most recent log lines kept in memory to w, newest first
// if reverse is set
func Dump(w io.Writer, reverse bool) error {
	return memory.Export(w, reverse)
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithNameAndFields(ctx context.Context, name string, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...).Named(name)
	ctx = Context(ctx, logger)
	return logger, ctx
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}

// Sync flushes the root logger
func Sync() {
	rootLogger.Sync()
}
