package woof

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFields_AppendsInOrder(t *testing.T) {
	ctx := WithFields(context.Background(), F("a", "1"), F("b", "2"))

	assert.Equal(t, []Field{{"a", "1"}, {"b", "2"}}, ContextFields(ctx))
}

func TestWithFields_NestingAccumulatesOuterFirst(t *testing.T) {
	outer := WithFields(context.Background(), F("outer", "x"))
	inner := WithFields(outer, F("inner", "y"))

	assert.Equal(t, []Field{{"outer", "x"}, {"inner", "y"}}, ContextFields(inner))
	assert.Equal(t, []Field{{"outer", "x"}}, ContextFields(outer),
		"outer scope must be unaffected by nesting")
}

func TestWithFields_DuplicateKeysPreserved(t *testing.T) {
	ctx := WithFields(context.Background(), F("k", "1"))
	ctx = WithFields(ctx, F("k", "2"))

	assert.Equal(t, []Field{{"k", "1"}, {"k", "2"}}, ContextFields(ctx))
}

func TestContextFields_EmptyWhenUnset(t *testing.T) {
	assert.Nil(t, ContextFields(context.Background()))
	assert.Nil(t, ContextFields(nil)) //nolint:staticcheck // nil tolerance is part of the contract
}

func TestScoped_ResultPassthrough(t *testing.T) {
	wantErr := errors.New("boom")

	err := Scoped(context.Background(), []Field{{"req", "1"}},
		func(ctx context.Context) error {
			assert.Equal(t, []Field{{"req", "1"}}, ContextFields(ctx))

			return wantErr
		})

	require.ErrorIs(t, err, wantErr)
}

func TestScoped_RestoresOnEveryExitPath(t *testing.T) {
	ctx := WithFields(context.Background(), F("base", "v"))
	before := ContextFields(ctx)

	_ = Scoped(ctx, []Field{{"extra", "w"}}, func(context.Context) error {
		return errors.New("early exit")
	})
	assert.Equal(t, before, ContextFields(ctx))

	require.Panics(t, func() {
		_ = Scoped(ctx, []Field{{"extra", "w"}}, func(context.Context) error {
			panic("abort")
		})
	})
	assert.Equal(t, before, ContextFields(ctx),
		"scope must be restored even when the body panics")
}

func TestScoped_ConcurrentFlowIsolation(t *testing.T) {
	var wg sync.WaitGroup

	for _, tag := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx := context.Background()
			for range 500 {
				_ = Scoped(ctx, []Field{{"flow", tag}},
					func(inner context.Context) error {
						fields := ContextFields(inner)
						assert.Equal(t, []Field{{"flow", tag}}, fields)

						return nil
					})
			}
		}()
	}

	wg.Wait()
}
