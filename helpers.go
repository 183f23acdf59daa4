package woof

import "context"

// TapDebug logs at Debug level and returns v unchanged, for use inside
// transformation pipelines.
func TapDebug[T any](ctx context.Context, v T, msg string, fields ...Field) T {
	emit(ctx, LevelDebug, "", msg, fields)

	return v
}

// TapInfo logs at Info level and returns v unchanged.
func TapInfo[T any](ctx context.Context, v T, msg string, fields ...Field) T {
	emit(ctx, LevelInfo, "", msg, fields)

	return v
}

// TapWarning logs at Warning level and returns v unchanged.
func TapWarning[T any](ctx context.Context, v T, msg string, fields ...Field) T {
	emit(ctx, LevelWarning, "", msg, fields)

	return v
}

// TapError logs at Error level and returns v unchanged.
func TapError[T any](ctx context.Context, v T, msg string, fields ...Field) T {
	emit(ctx, LevelError, "", msg, fields)

	return v
}

// LogError logs msg at Error level when err is non-nil and returns err
// unchanged either way. A nil error produces no output.
func LogError(ctx context.Context, err error, msg string, fields ...Field) error {
	if err != nil {
		emit(ctx, LevelError, "", msg, fields)
	}

	return err
}

// Time invokes body synchronously and, when it returns a nil error, logs
// one Info line with message label + " completed" and a single duration_ms
// field holding the elapsed monotonic milliseconds. Body's result is
// returned unchanged.
//
// A body that fails, by error or by panic, bypasses the timing log
// entirely: no partial duration is ever reported for incomplete work.
func Time[T any](
	ctx context.Context,
	label string,
	body func(context.Context) (T, error),
) (T, error) {
	env := snapshot().env
	start := env.MonotonicMillis()

	v, err := body(ctx)
	if err != nil {
		return v, err
	}

	elapsed := env.MonotonicMillis() - start
	emit(ctx, LevelInfo, "", label+" completed", []Field{Int64("duration_ms", elapsed)})

	return v, nil
}
