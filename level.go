package woof

import (
	"iter"
	"strings"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// DefaultLevel is the minimum level in effect before any configuration.
const DefaultLevel = LevelDebug

// Enabled reports whether a message at level l passes the given minimum
// level.
func (l Level) Enabled(minimum Level) bool {
	return l >= minimum
}

// String returns the full lowercase name of the level, as used by the
// "level" key of the JSON format.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the short uppercase tag of the level, as used by the text and
// compact formats. Note that LevelWarning shortens to "WARN".
func (l Level) Tag() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Levels returns an iterator over the names of all defined log levels,
// in ascending severity order.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "debug", "info", "warn", "warning", and "error",
// compared case-insensitively. Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return DefaultLevel
	}
}
