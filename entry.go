package woof

import "context"

// Entry is a fully resolved, immutable record of one log call, ready for
// rendering. It is constructed once per emitted call, passed to exactly one
// formatter invocation, then discarded. Custom format delegates are the
// only external code that observes an Entry from the emit path.
//
// Fields always appear in the order: global context, scoped context,
// call-site fields, each segment in its original relative order. This
// order is an observable contract: it fixes the JSON key order and the
// text/compact rendering order.
type Entry struct {
	Message   string
	Namespace string
	Time      string
	Fields    []Field
	Level     Level
}

// newEntry assembles an Entry from the configured global context, the
// scoped context carried by ctx, and the call-site fields, stamping the
// wall-clock timestamp from the environment. Level filtering has already
// happened in the caller.
func newEntry(
	ctx context.Context,
	cfg config,
	level Level,
	namespace string,
	msg string,
	fields []Field,
) Entry {
	scoped := ContextFields(ctx)

	merged := make([]Field, 0, len(cfg.global)+len(scoped)+len(fields))
	merged = append(merged, cfg.global...)
	merged = append(merged, scoped...)
	merged = append(merged, fields...)

	return Entry{
		Level:     level,
		Message:   msg,
		Fields:    merged,
		Namespace: namespace,
		Time:      cfg.env.Now(),
	}
}
