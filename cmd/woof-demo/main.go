// Command woof-demo exercises the woof logging library from the command
// line: it configures the process-wide logger from flags, then runs a short
// scenario covering namespaced loggers, scoped context, lazy logging, and
// the pipeline helpers. An optional pprof profile can be captured around a
// burst of log calls.
package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/lupodevelop/woof"
)

// CLI is the top-level command-line interface for woof-demo.
type CLI struct {
	Level  string `default:"debug" enum:"${levels}"     help:"Minimum level to emit"     group:"log"`
	Format string `default:"text"  enum:"${formats}"    help:"Output format"             group:"log"`
	Colors string `default:"auto"  enum:"${colorModes}" help:"Color mode (text format)"  group:"log"`

	Burst      int    `default:"0"           help:"Extra lines to emit, for profiling runs" group:"pprof"`
	Profile    string `default:"" enum:",cpu,mem" help:"Capture a pprof profile of the run" group:"pprof"`
	ProfileDir string `default:"."           help:"Profile output directory" type:"path"    group:"pprof"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("woof-demo"),
		kong.Description("Demonstrates the woof structured-logging library"),
		kong.UsageOnError(),
		kong.Vars{
			"levels":     joinNames(woof.Levels()),
			"formats":    joinNames(woof.Formats()),
			"colorModes": joinNames(woof.ColorModes()),
		},
	)

	if stop := startProfile(cli.Profile, cli.ProfileDir); stop != nil {
		defer stop.Stop()
	}

	woof.Configure(
		woof.WithLevel(woof.ParseLevel(cli.Level)),
		woof.WithFormat(woof.ParseFormat(cli.Format)),
		woof.WithColors(woof.ParseColorMode(cli.Colors)))

	run(context.Background(), cli.Burst)
}

// joinNames flattens a name iterator into kong's comma-separated enum form.
func joinNames(names iter.Seq[string]) string {
	return strings.Join(slices.Collect(names), ",")
}

func run(ctx context.Context, burst int) {
	woof.SetGlobalContext(woof.F("app", "woof-demo"))
	woof.Info("demo started")

	db := woof.New("db")

	_ = woof.Scoped(ctx, []woof.Field{woof.F("req", "42")},
		func(ctx context.Context) error {
			woof.InfoContext(ctx, "handling request", woof.F("path", "/bones"))
			db.DebugContext(ctx, "query planned", woof.Int("tables", 3))

			rows, err := woof.Time(ctx, "query",
				func(context.Context) (int, error) {
					time.Sleep(5 * time.Millisecond)

					return 7, nil
				})
			if err != nil {
				return err
			}

			total := woof.TapInfo(ctx, rows*2, "doubling rows",
				woof.Int("rows", rows))

			woof.DebugLazy(ctx, func() string {
				return fmt.Sprintf("expensive detail: total=%d", total)
			})

			return woof.LogError(ctx, fetchFromCache(), "cache lookup failed",
				woof.F("dep", "cache"))
		})

	for i := range burst {
		woof.Debug("burst line", woof.Int("i", i))
	}

	woof.Warning("demo finishing", woof.Bool("clean", true))
}

// fetchFromCache stands in for a flaky downstream dependency so the demo
// has an error path to report.
func fetchFromCache() error {
	return errors.New("connect refused")
}
