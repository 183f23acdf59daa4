package woof

import "strings"

// ANSI escape codes used by the colored text format.
const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorGray    = "\033[90m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorBoldRed = "\033[1;31m"
)

// levelColor maps a level to the escape applied to its text-format tag.
func levelColor(l Level) string {
	switch l {
	case LevelInfo:
		return colorBlue
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorBoldRed
	default:
		return colorGray
	}
}

// Render renders an entry in the given format with colors forced off.
// It is a pure preview entry point: unlike the emit path, it never
// consults terminal or environment state.
func Render(e Entry, f Format) string {
	return render(e, f, false)
}

// render dispatches on the format kind. The colors flag only affects the
// text format; compact and JSON output is never colored, and a custom
// delegate handles color on its own.
func render(e Entry, f Format, colors bool) string {
	switch f.kind {
	case formatCompact:
		return renderCompact(e)
	case formatJSON:
		return renderJSON(e)
	case formatCustom:
		return f.render(e)
	default:
		return renderText(e, colors)
	}
}

// shortTime extracts the 8-character HH:MM:SS portion of an ISO-8601
// timestamp. The YYYY-MM-DDTHH:MM:SS.sssZ layout is assumed, not
// validated; an entry carrying a non-conforming timestamp (possible only
// through a hand-built Entry) renders a garbage clock, not an error.
// Inputs too short to slice are returned whole.
func shortTime(ts string) string {
	if len(ts) < 19 {
		return ts
	}

	return ts[11:19]
}

func renderText(e Entry, colors bool) string {
	tag := e.Level.Tag()
	clock := shortTime(e.Time)

	if colors {
		tag = levelColor(e.Level) + tag + colorReset
		clock = colorDim + clock + colorReset
	}

	var sb strings.Builder

	sb.WriteByte('[')
	sb.WriteString(tag)
	sb.WriteString("] ")
	sb.WriteString(clock)
	sb.WriteByte(' ')

	if e.Namespace != "" {
		sb.WriteString(e.Namespace)
		sb.WriteString(": ")
	}

	sb.WriteString(e.Message)

	for _, f := range e.Fields {
		sb.WriteString("\n  ")
		sb.WriteString(f.Key)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
	}

	return sb.String()
}

func renderCompact(e Entry) string {
	var sb strings.Builder

	sb.WriteString(e.Level.Tag())
	sb.WriteByte(' ')
	sb.WriteString(e.Time)

	if e.Namespace != "" {
		sb.WriteString(" ns=")
		sb.WriteString(e.Namespace)
	}

	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	for _, f := range e.Fields {
		sb.WriteByte(' ')
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}

	return sb.String()
}

func renderJSON(e Entry) string {
	var sb strings.Builder

	sb.WriteByte('{')
	writeJSONPair(&sb, "level", e.Level.String(), true)
	writeJSONPair(&sb, "time", e.Time, false)

	if e.Namespace != "" {
		writeJSONPair(&sb, "ns", e.Namespace, false)
	}

	writeJSONPair(&sb, "msg", e.Message, false)

	for _, f := range e.Fields {
		writeJSONPair(&sb, f.Key, f.Value, false)
	}

	sb.WriteByte('}')

	return sb.String()
}

func writeJSONPair(sb *strings.Builder, key, value string, first bool) {
	if !first {
		sb.WriteByte(',')
	}

	sb.WriteByte('"')
	escapeJSON(sb, key)
	sb.WriteString(`":"`)
	escapeJSON(sb, value)
	sb.WriteByte('"')
}

// escapeJSON writes s with the RFC 8259 string escapes applied: backslash,
// quote, newline, carriage return, tab, backspace, and form feed. Handling
// backslash in the same pass as the characters it introduces means escapes
// are never applied twice. No other characters are escaped; non-ASCII text
// passes through as UTF-8.
func escapeJSON(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			sb.WriteByte(c)
		}
	}
}
