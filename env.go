package woof

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// timestampLayout is the wall-clock format attached to every entry:
// ISO-8601 with millisecond precision, always UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// noColorVar is the conventional environment variable that suppresses
// color output when set to any value.
const noColorVar = "NO_COLOR"

// Environment supplies the wall clock, monotonic clock, terminal check,
// and environment-variable lookup the logger depends on. The package uses
// a host-backed implementation unless one is injected with
// [WithEnvironment], which tests use to pin timestamps and TTY state.
type Environment interface {
	// Now returns the current wall-clock time as an ISO-8601 string
	// in the YYYY-MM-DDTHH:MM:SS.sssZ layout, UTC.
	Now() string

	// MonotonicMillis returns a monotonically non-decreasing millisecond
	// counter with an arbitrary epoch, used only for elapsed-time
	// subtraction.
	MonotonicMillis() int64

	// StdoutIsTTY reports whether standard output is a terminal.
	StdoutIsTTY() bool

	// LookupEnv retrieves the value of the named environment variable,
	// reporting whether it is set.
	LookupEnv(name string) (string, bool)
}

var processStart = time.Now()

// systemEnvironment is the default Environment backed by the host process.
type systemEnvironment struct{}

func (systemEnvironment) Now() string {
	return time.Now().UTC().Format(timestampLayout)
}

func (systemEnvironment) MonotonicMillis() int64 {
	return time.Since(processStart).Milliseconds()
}

func (systemEnvironment) StdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (systemEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}
