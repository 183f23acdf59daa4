package woof

import "context"

// fieldsKey is the context key carrying the scoped field list.
type fieldsKey struct{}

// WithFields returns a child context whose scoped field list is the
// parent's list followed by fields, each segment keeping its original
// order. The parent context is never modified, so exiting the region that
// holds the child restores the previous scope on every exit path,
// including panics.
//
// Scoped fields ride on the context chain rather than on any ambient
// per-goroutine slot, so concurrent execution flows are fully isolated
// from one another.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	parent := ContextFields(ctx)

	merged := make([]Field, 0, len(parent)+len(fields))
	merged = append(merged, parent...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns the scoped field list carried by ctx, or nil if
// none has been set. The returned slice must be treated as immutable.
func ContextFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	fields, _ := ctx.Value(fieldsKey{}).([]Field)

	return fields
}

// Scoped invokes body with a context whose scoped field list is extended
// by fields, and propagates body's result unchanged. No lock is held while
// body runs, and the caller's ctx is untouched regardless of how body
// exits.
func Scoped(
	ctx context.Context,
	fields []Field,
	body func(context.Context) error,
) error {
	return body(WithFields(ctx, fields...))
}
