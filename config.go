package woof

import (
	"io"
	"os"
	"slices"
	"sync"
)

// config holds the process-wide logger state.
type config struct {
	output io.Writer
	env    Environment
	global []Field
	format Format
	level  Level
	colors ColorMode
}

// The store is guarded by a single RWMutex: reads happen on every log call
// and take the cheap read lock, writes are rare reconfiguration events.
// The lock is never held across rendering, writing, or any user-supplied
// callback, so logging reentrantly from a custom formatter cannot deadlock.
var (
	stateMu sync.RWMutex
	state   = defaultState()
)

func defaultState() config {
	return config{
		output: os.Stdout,
		env:    systemEnvironment{},
		level:  DefaultLevel,
		format: DefaultFormat,
		colors: DefaultColors,
	}
}

// snapshot returns a copy of the current state under the read lock.
func snapshot() config {
	stateMu.RLock()
	defer stateMu.RUnlock()

	return state
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithColors returns a functional option that sets the color mode used by
// the text format.
func WithColors(mode ColorMode) Option {
	return func(c config) config {
		c.colors = mode

		return c
	}
}

// WithGlobalContext returns a functional option that replaces the global
// context fields wholesale. The previous list is discarded, not merged.
func WithGlobalContext(fields ...Field) Option {
	return func(c config) config {
		c.global = slices.Clone(fields)

		return c
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log lines. The default is [os.Stdout].
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithEnvironment returns a functional option that sets the [Environment]
// supplying clock, terminal, and environment-variable services.
// If a nil environment is provided, the host-backed default is restored.
func WithEnvironment(env Environment) Option {
	return func(c config) config {
		if env == nil {
			env = systemEnvironment{}
		}

		c.env = env

		return c
	}
}

// Configure applies the given options to the process-wide configuration as
// one atomic update: no concurrent reader observes a partially applied set
// of options.
func Configure(opts ...Option) {
	stateMu.Lock()
	defer stateMu.Unlock()

	state = apply(state, opts...)
}

// SetLevel replaces the minimum log level.
func SetLevel(level Level) {
	Configure(WithLevel(level))
}

// SetFormat replaces the output format.
func SetFormat(format Format) {
	Configure(WithFormat(format))
}

// SetColors replaces the color mode.
func SetColors(mode ColorMode) {
	Configure(WithColors(mode))
}

// SetGlobalContext replaces the global context fields wholesale.
// Global fields are attached ahead of scoped and call-site fields on every
// emitted message, process-wide.
func SetGlobalContext(fields ...Field) {
	Configure(WithGlobalContext(fields...))
}

// Config is a point-in-time snapshot of the process-wide settings.
type Config struct {
	GlobalContext []Field
	Format        Format
	Level         Level
	Colors        ColorMode
}

// Settings returns a snapshot of the current configuration.
func Settings() Config {
	cfg := snapshot()

	return Config{
		Level:         cfg.level,
		Format:        cfg.format,
		Colors:        cfg.colors,
		GlobalContext: slices.Clone(cfg.global),
	}
}
