package woof

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// fixedTime is the wall-clock value pinned by the test environment.
const fixedTime = "2026-02-11T10:30:45.123Z"

// fakeEnv is a deterministic Environment for tests. The monotonic counter
// starts at millis and advances by step on every read.
type fakeEnv struct {
	vars   map[string]string
	now    string
	millis int64
	step   int64
	tty    bool
	mu     sync.Mutex
}

func (e *fakeEnv) Now() string {
	if e.now == "" {
		return fixedTime
	}

	return e.now
}

func (e *fakeEnv) MonotonicMillis() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.millis
	e.millis += e.step

	return v
}

func (e *fakeEnv) StdoutIsTTY() bool {
	return e.tty
}

func (e *fakeEnv) LookupEnv(name string) (string, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// swapState installs a fresh default configuration with opts applied and
// restores the previous process-wide state when the test finishes.
func swapState(t *testing.T, opts ...Option) {
	t.Helper()

	stateMu.Lock()
	prev := state
	state = apply(defaultState(), opts...)
	stateMu.Unlock()

	t.Cleanup(func() {
		stateMu.Lock()
		state = prev
		stateMu.Unlock()
	})
}

// syncBuffer is a goroutine-safe output sink for concurrency tests.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.Reset()
}

// Lines returns the non-empty output lines written so far.
func (b *syncBuffer) Lines() []string {
	return splitLines(b.String())
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
