package woof

import (
	"context"
	"fmt"
)

// emit filters against the configured minimum level and, if the level
// passes, assembles, renders, and writes one line. The configuration lock
// is released before any rendering or writing happens.
func emit(ctx context.Context, level Level, namespace, msg string, fields []Field) {
	cfg := snapshot()

	if !level.Enabled(cfg.level) {
		return
	}

	write(ctx, cfg, level, namespace, msg, fields)
}

func write(ctx context.Context, cfg config, level Level, namespace, msg string, fields []Field) {
	entry := newEntry(ctx, cfg, level, namespace, msg, fields)

	// Color resolution touches the terminal and environment, so it is
	// skipped entirely for formats that never color.
	colors := false
	if cfg.format.kind == formatText {
		colors = resolveColors(cfg)
	}

	fmt.Fprintln(cfg.output, render(entry, cfg.format, colors))
}

// resolveColors decides whether the text format may emit ANSI escapes.
// ColorAuto requires a terminal on standard output and no NO_COLOR
// variable; any value of NO_COLOR, including empty, suppresses color.
func resolveColors(cfg config) bool {
	switch cfg.colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if !cfg.env.StdoutIsTTY() {
			return false
		}

		_, noColor := cfg.env.LookupEnv(noColorVar)

		return !noColor
	}
}

// lazy invokes fn to produce the message if and only if the level passes
// the configured minimum.
func lazy(ctx context.Context, level Level, fn func() string, fields []Field) {
	cfg := snapshot()

	if !level.Enabled(cfg.level) {
		return
	}

	write(ctx, cfg, level, "", fn(), fields)
}

// DebugContext logs a message at Debug level with the scoped fields
// carried by ctx.
func DebugContext(ctx context.Context, msg string, fields ...Field) {
	emit(ctx, LevelDebug, "", msg, fields)
}

// Debug logs a message at Debug level with no scoped fields.
func Debug(msg string, fields ...Field) {
	DebugContext(context.Background(), msg, fields...)
}

// InfoContext logs a message at Info level with the scoped fields carried
// by ctx.
func InfoContext(ctx context.Context, msg string, fields ...Field) {
	emit(ctx, LevelInfo, "", msg, fields)
}

// Info logs a message at Info level with no scoped fields.
func Info(msg string, fields ...Field) {
	InfoContext(context.Background(), msg, fields...)
}

// WarningContext logs a message at Warning level with the scoped fields
// carried by ctx.
func WarningContext(ctx context.Context, msg string, fields ...Field) {
	emit(ctx, LevelWarning, "", msg, fields)
}

// Warning logs a message at Warning level with no scoped fields.
func Warning(msg string, fields ...Field) {
	WarningContext(context.Background(), msg, fields...)
}

// ErrorContext logs a message at Error level with the scoped fields
// carried by ctx.
func ErrorContext(ctx context.Context, msg string, fields ...Field) {
	emit(ctx, LevelError, "", msg, fields)
}

// Error logs a message at Error level with no scoped fields.
func Error(msg string, fields ...Field) {
	ErrorContext(context.Background(), msg, fields...)
}

// DebugLazy logs at Debug level with a message produced by fn. The thunk
// is invoked if and only if Debug passes the configured minimum level, so
// an expensive message is never built just to be discarded.
func DebugLazy(ctx context.Context, fn func() string, fields ...Field) {
	lazy(ctx, LevelDebug, fn, fields)
}

// InfoLazy logs at Info level with a message produced by fn, invoked only
// if the level passes the filter.
func InfoLazy(ctx context.Context, fn func() string, fields ...Field) {
	lazy(ctx, LevelInfo, fn, fields)
}

// WarningLazy logs at Warning level with a message produced by fn, invoked
// only if the level passes the filter.
func WarningLazy(ctx context.Context, fn func() string, fields ...Field) {
	lazy(ctx, LevelWarning, fn, fields)
}

// ErrorLazy logs at Error level with a message produced by fn, invoked
// only if the level passes the filter.
func ErrorLazy(ctx context.Context, fn func() string, fields ...Field) {
	lazy(ctx, LevelError, fn, fields)
}

// Logger is an immutable handle that attaches a namespace to every message
// it emits. It holds no state of its own beyond the namespace and
// delegates all filtering, context, and formatting behavior to the shared
// process-wide configuration.
type Logger struct {
	namespace string
}

// New returns a Logger labeled with the given namespace.
func New(namespace string) Logger {
	return Logger{namespace: namespace}
}

// Namespace returns the namespace label of the logger.
func (l Logger) Namespace() string {
	return l.namespace
}

// Log logs a message at the given level with the logger's namespace
// attached.
func (l Logger) Log(ctx context.Context, level Level, msg string, fields ...Field) {
	emit(ctx, level, l.namespace, msg, fields)
}

// DebugContext logs a namespaced message at Debug level with the scoped
// fields carried by ctx.
func (l Logger) DebugContext(ctx context.Context, msg string, fields ...Field) {
	l.Log(ctx, LevelDebug, msg, fields...)
}

// Debug logs a namespaced message at Debug level.
func (l Logger) Debug(msg string, fields ...Field) {
	l.DebugContext(context.Background(), msg, fields...)
}

// InfoContext logs a namespaced message at Info level with the scoped
// fields carried by ctx.
func (l Logger) InfoContext(ctx context.Context, msg string, fields ...Field) {
	l.Log(ctx, LevelInfo, msg, fields...)
}

// Info logs a namespaced message at Info level.
func (l Logger) Info(msg string, fields ...Field) {
	l.InfoContext(context.Background(), msg, fields...)
}

// WarningContext logs a namespaced message at Warning level with the
// scoped fields carried by ctx.
func (l Logger) WarningContext(ctx context.Context, msg string, fields ...Field) {
	l.Log(ctx, LevelWarning, msg, fields...)
}

// Warning logs a namespaced message at Warning level.
func (l Logger) Warning(msg string, fields ...Field) {
	l.WarningContext(context.Background(), msg, fields...)
}

// ErrorContext logs a namespaced message at Error level with the scoped
// fields carried by ctx.
func (l Logger) ErrorContext(ctx context.Context, msg string, fields ...Field) {
	l.Log(ctx, LevelError, msg, fields...)
}

// Error logs a namespaced message at Error level.
func (l Logger) Error(msg string, fields ...Field) {
	l.ErrorContext(context.Background(), msg, fields...)
}
