package woof_test

import (
	"context"
	"errors"
	"os"

	"github.com/lupodevelop/woof"
)

// pinnedEnv fixes the clock and terminal state so example output is
// deterministic.
type pinnedEnv struct{}

func (pinnedEnv) Now() string                     { return "2026-02-11T10:30:45.123Z" }
func (pinnedEnv) MonotonicMillis() int64          { return 0 }
func (pinnedEnv) StdoutIsTTY() bool               { return false }
func (pinnedEnv) LookupEnv(string) (string, bool) { return "", false }

func Example() {
	woof.Configure(
		woof.WithOutput(os.Stdout),
		woof.WithEnvironment(pinnedEnv{}),
		woof.WithFormat(woof.FormatText),
		woof.WithColors(woof.ColorNever),
		woof.WithGlobalContext())

	woof.Info("Server started")
	woof.Warning("High memory", woof.Int("usage_mb", 1024), woof.Int("threshold", 800))

	// Output:
	// [INFO] 10:30:45 Server started
	// [WARN] 10:30:45 High memory
	//   usage_mb: 1024
	//   threshold: 800
}

func Example_namespace() {
	woof.Configure(
		woof.WithOutput(os.Stdout),
		woof.WithEnvironment(pinnedEnv{}),
		woof.WithFormat(woof.FormatCompact),
		woof.WithGlobalContext())

	db := woof.New("db")
	db.Debug("Query done", woof.Int("ms", 12))

	// Output:
	// DEBUG 2026-02-11T10:30:45.123Z ns=db Query done ms=12
}

func Example_scopedContext() {
	woof.Configure(
		woof.WithOutput(os.Stdout),
		woof.WithEnvironment(pinnedEnv{}),
		woof.WithFormat(woof.FormatJSON),
		woof.WithGlobalContext(woof.F("app", "svc")))

	ctx := woof.WithFields(context.Background(), woof.F("req", "1"))
	woof.InfoContext(ctx, "Connected", woof.F("inline", "x"))

	woof.SetGlobalContext()

	// Output:
	// {"level":"info","time":"2026-02-11T10:30:45.123Z","msg":"Connected","app":"svc","req":"1","inline":"x"}
}

func Example_logError() {
	woof.Configure(
		woof.WithOutput(os.Stdout),
		woof.WithEnvironment(pinnedEnv{}),
		woof.WithFormat(woof.FormatCompact),
		woof.WithGlobalContext())

	err := woof.LogError(context.Background(),
		errors.New("connect refused"), "dial failed", woof.F("dep", "cache"))
	_ = woof.LogError(context.Background(), nil, "never printed")
	_ = err

	// Output:
	// ERROR 2026-02-11T10:30:45.123Z dial failed dep=cache
}
