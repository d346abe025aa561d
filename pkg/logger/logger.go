// Package logger wires zap (JSON, stderr) behind a logr.Logger facade and
// provides context propagation helpers. Logs go to stderr only: stdout is
// reserved for the launch directive and the alternate screen.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/palette/pkg/settings"
)

// Structured field keys shared by all log entries.
const (
	RootCommandKey = "root_command"
	SubCommandKey  = "sub_command"
	CommitKey      = "commit"
	VersionKey     = "version"
	BuildTimeKey   = "build_time"
	GoVersionKey   = "go_version"
	TimeStampKey   = "timestamp"
	MessageKey     = "message"
)

type loggerContextKey struct{}

var (
	once sync.Once

	// zapLogger is kept for Sync; all call sites log through the logr facade.
	zapLogger *zap.Logger
	logrProxy *logr.Logger

	noopLogger = logr.Discard()
)

// Get builds the process-wide logger on first call; later calls return the
// same instance regardless of the level passed. Level follows zapcore
// semantics: 0 is info, -1 is debug.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = TimeStampKey
		encoderCfg.MessageKey = MessageKey

		buildInfo, _ := debug.ReadBuildInfo()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
		).With([]zapcore.Field{
			zap.String(CommitKey, settings.VersionInformation.Commit),
			zap.String(VersionKey, settings.VersionInformation.BuildVersion),
			zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
			zap.String(GoVersionKey, buildInfo.GoVersion),
		})

		zapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
			zap.WithFatalHook(zapcore.WriteThenPanic),
		)
		l := zapr.NewLogger(zapLogger)
		logrProxy = &l
	})
	if logrProxy == nil {
		return &noopLogger
	}
	return logrProxy
}

// WithLogger attaches the logger to the context. Attaching a logger the
// context already carries returns the context unchanged.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if existing, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && existing == log {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the context's logger, the global logger, or a no-op
// logger, in that order of preference. Never nil.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	if logrProxy != nil {
		return logrProxy
	}
	return &noopLogger
}

// WithValues returns a logger with extra key-value pairs attached.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	next := lgr.WithValues(keysAndValues...)
	return &next
}

// Sync flushes buffered entries. Call once before exit.
func Sync() {
	if zapLogger == nil {
		return
	}
	if err := zapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError reports the usual Sync failures on TTYs and pipes.
// Windows wraps ERROR_INVALID_HANDLE in *os.PathError, which does not
// compare equal to syscall.EINVAL, hence the string match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
