package core

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReady(t *testing.T) {
	f := Ready(42)

	v, ok := f.Poll()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	select {
	case <-f.Done():
	default:
		t.Fatal("ready future must have a closed done channel")
	}
}

func TestNever(t *testing.T) {
	f := Never[string]()

	v, ok := f.Poll()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Nil(t, f.Done())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGo_Value(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := Go(context.Background(), func(ctx context.Context) string {
		<-release
		return "done"
	})

	_, ok := f.Poll()
	assert.False(t, ok)

	close(release)

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)

	v, ok = f.Poll()
	assert.True(t, ok)
	assert.Equal(t, "done", v)
}

func TestGo_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	f := Go(ctx, func(ctx context.Context) any {
		return ctx.Value(key{})
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "marker", v)
}

func TestGo_PanicIsRethrown(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(ctx context.Context) int {
		panic("boom")
	})
	<-f.Done()

	assert.PanicsWithValue(t, "boom", func() { f.Poll() })
	assert.PanicsWithValue(t, "boom", func() { _, _ = f.Await(context.Background()) })
}

func TestGo_GoexitIsReported(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(ctx context.Context) int {
		runtime.Goexit()
		return 1
	})
	<-f.Done()

	assert.PanicsWithValue(t, ErrOperationExited, func() { f.Poll() })
}

func TestAwait_ContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Never[int]().Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	v, err := Ready(3).Await(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}
