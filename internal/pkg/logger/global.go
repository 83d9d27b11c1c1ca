package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger. Call once during startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, falling back to a production logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		if globalLogger != nil {
			return
		}
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: defaultLogger, sugar: defaultLogger.Sugar()}
	})
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WarnCtx logs a warning correlated with the New Relic transaction and the
// request metadata in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx)).Warn(msg, withRequest(ctx, fields)...)
}

// ErrorCtx logs an error correlated with the New Relic transaction and the
// request metadata in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx)).Error(msg, withRequest(ctx, fields)...)
}

func withRequest(ctx context.Context, fields []Field) []Field {
	rc := requestcontext.FromContext(ctx)
	if rc.RequestID != "" {
		fields = append(fields, String("request_id", rc.RequestID))
	}
	if rc.Actor != "" {
		fields = append(fields, String("actor", rc.Actor))
	}
	return fields
}

// Security logs a security-relevant event such as a rejected approval token
func Security(ctx context.Context, msg string, fields ...Field) {
	fields = append(fields, Bool("security_event", true))
	WarnCtx(ctx, msg, fields...)
}
