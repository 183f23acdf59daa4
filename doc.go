// Package woof is a small, embeddable structured-logging library.
//
// Callers emit leveled messages with key/value fields; the package filters
// by minimum severity, enriches each message with contextual fields, renders
// it in one of several output formats, and writes one line to standard
// output per emitted call.
//
// # Basic Usage
//
//	woof.Info("server started", woof.F("addr", ":8080"))
//	woof.Error("connect failed", woof.Err(err))
//
// # Configuration
//
// Configuration is process-wide and mutable at runtime using functional
// options. Absent any explicit call, the defaults are [DefaultLevel],
// [DefaultFormat], [DefaultColors], and an empty global context:
//
//	woof.Configure(
//		woof.WithLevel(woof.LevelWarning),
//		woof.WithFormat(woof.FormatJSON),
//		woof.WithColors(woof.ColorNever))
//
// A [Configure] call is applied atomically as a whole: concurrent readers
// never observe a partially applied update.
//
// # Contextual Fields
//
// Two independent field registers are merged into every emitted message,
// ahead of the call-site fields:
//
//	woof.SetGlobalContext(woof.F("app", "svc"))        // process-wide
//	ctx = woof.WithFields(ctx, woof.F("request", "1")) // per execution flow
//	woof.InfoContext(ctx, "handling", woof.F("path", "/")) // app, request, path
//
// Scoped fields ride on a [context.Context], so each concurrent execution
// flow observes its own field list with no cross-flow leakage. [Scoped]
// wraps a callback in an extended scope; the caller's context is never
// modified, so the previous scope is restored on every exit path.
//
// # Output Formats
//
// Four formats are supported: [FormatText] (human-oriented, optionally
// ANSI-colored when standard output is a terminal), [FormatCompact] (single
// line, key=value pairs), [FormatJSON] (one RFC 8259 object per line), and
// [FormatCustom] (caller-supplied rendering delegate).
//
// # Helpers
//
// Lazy variants ([DebugLazy] and friends) defer message construction until
// level filtering confirms the message will be emitted. [TapInfo] and
// friends log and pass a value through unchanged, for use inside
// transformation pipelines. [LogError] logs a non-nil error and returns it
// unchanged. [Time] measures a callback and logs its elapsed milliseconds.
package woof
