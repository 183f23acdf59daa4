package woof

import (
	"iter"
	"strings"
)

// Format selects the rendering strategy for emitted log lines.
//
// The three named values [FormatText], [FormatCompact], and [FormatJSON]
// cover the built-in renderers; [FormatCustom] wraps a caller-supplied
// delegate. A Format value is immutable once constructed.
type Format struct {
	kind   formatKind
	render func(Entry) string
}

type formatKind int

const (
	formatText formatKind = iota
	formatCompact
	formatJSON
	formatCustom
)

var (
	// FormatText renders "[TAG] HH:MM:SS message" with one indented line
	// per field, optionally ANSI-colored.
	FormatText = Format{kind: formatText}

	// FormatCompact renders a single space-joined line with key=value
	// pairs. Never colored.
	FormatCompact = Format{kind: formatCompact}

	// FormatJSON renders one RFC 8259 object per line with a fixed key
	// order: level, time, ns (if present), msg, then each field in order.
	FormatJSON = Format{kind: formatJSON}
)

// DefaultFormat is the output format in effect before any configuration.
var DefaultFormat = FormatText

// FormatCustom returns a Format that delegates rendering entirely to fn.
// The delegate receives the assembled [Entry] and its result is written
// verbatim; colors and escaping are the delegate's responsibility. A
// failure inside fn propagates to the caller of the logging operation.
func FormatCustom(fn func(Entry) string) Format {
	return Format{kind: formatCustom, render: fn}
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f.kind {
	case formatText:
		return "text"
	case formatCompact:
		return "compact"
	case formatJSON:
		return "json"
	default:
		return "custom"
	}
}

// Formats returns an iterator over the names of the built-in formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{
			FormatText,
			FormatCompact,
			FormatJSON,
		} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a string representation of a built-in log format.
// Valid format strings are "text", "compact", and "json", compared
// case-insensitively. Unrecognized input yields [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText
	case "compact":
		return FormatCompact
	case "json":
		return FormatJSON
	default:
		return DefaultFormat
	}
}

// ColorMode controls whether the text format emits ANSI color escapes.
type ColorMode int

const (
	// ColorAuto enables color iff standard output is a terminal and the
	// NO_COLOR environment variable is not set, checked at format time.
	ColorAuto ColorMode = iota

	// ColorAlways enables color unconditionally.
	ColorAlways

	// ColorNever disables color unconditionally.
	ColorNever
)

// DefaultColors is the color mode in effect before any configuration.
const DefaultColors = ColorAuto

// String returns the lowercase name of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ColorModes returns an iterator over the names of all color modes.
func ColorModes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, mode := range []ColorMode{
			ColorAuto,
			ColorAlways,
			ColorNever,
		} {
			if !yield(mode.String()) {
				return
			}
		}
	}
}

// ParseColorMode parses a string representation of a color mode.
// Valid mode strings are "auto", "always", and "never", compared
// case-insensitively. Unrecognized input yields [DefaultColors].
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return DefaultColors
	}
}
