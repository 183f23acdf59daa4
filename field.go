package woof

import "strconv"

// Field is one ordered key/value pair attached to a log message.
// Values are plain text by the time they reach the rendering pipeline;
// the typed constructors below perform the conversion at the call site.
//
// Field lists are ordered and duplicate keys are preserved: no
// deduplication occurs anywhere in the pipeline, and every formatter emits
// every pair, including repeats.
type Field struct {
	Key   string
	Value string
}

// F returns a Field with the given key and string value.
func F(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int returns a Field whose value is the decimal representation of v.
func Int(key string, v int) Field {
	return Field{Key: key, Value: strconv.Itoa(v)}
}

// Int64 returns a Field whose value is the decimal representation of v.
func Int64(key string, v int64) Field {
	return Field{Key: key, Value: strconv.FormatInt(v, 10)}
}

// Float returns a Field whose value is the shortest representation of v
// that round-trips exactly.
func Float(key string, v float64) Field {
	return Field{Key: key, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool returns a Field whose value is "true" or "false".
func Bool(key string, v bool) Field {
	return Field{Key: key, Value: strconv.FormatBool(v)}
}

// Err returns a Field keyed "error" carrying the error text.
// A nil error yields an empty value.
func Err(err error) Field {
	var msg string
	if err != nil {
		msg = err.Error()
	}

	return Field{Key: "error", Value: msg}
}
