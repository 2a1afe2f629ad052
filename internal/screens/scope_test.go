package screens

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_GoAndWait(t *testing.T) {
	s := NewScope(context.Background())
	var count atomic.Int32

	for range 5 {
		require.True(t, s.Go(func(context.Context) { count.Add(1) }))
	}
	s.Wait()

	assert.Equal(t, int32(5), count.Load())
}

func TestScope_CancelReachesRunningGoroutines(t *testing.T) {
	s := NewScope(context.Background())
	started := make(chan struct{})
	var sawCancel atomic.Bool

	s.Go(func(ctx context.Context) {
		close(started)
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
		case <-time.After(5 * time.Second):
		}
	})
	<-started
	s.Cancel()
	s.Wait()

	assert.True(t, sawCancel.Load())
	assert.True(t, s.Done())
}

func TestScope_GoAfterCancel(t *testing.T) {
	s := NewScope(context.Background())
	s.Cancel()

	ran := false
	ok := s.Go(func(context.Context) { ran = true })
	s.Wait()

	assert.False(t, ok)
	assert.False(t, ran)
}

func TestScope_Renew(t *testing.T) {
	s := NewScope(context.Background())
	s.Cancel()
	s.Renew()

	var ctxErr error
	ok := s.Go(func(ctx context.Context) { ctxErr = ctx.Err() })
	s.Wait()

	assert.True(t, ok)
	assert.NoError(t, ctxErr)
	assert.False(t, s.Done())
}

func TestScope_RenewKeepsParentValues(t *testing.T) {
	type key struct{}
	parent := context.WithValue(context.Background(), key{}, "v")
	s := NewScope(parent)
	s.Cancel()
	s.Renew()

	var got any
	s.Go(func(ctx context.Context) { got = ctx.Value(key{}) })
	s.Wait()

	assert.Equal(t, "v", got)
}

func TestScope_NilParent(t *testing.T) {
	//nolint:staticcheck // a nil parent falls back to Background
	s := NewScope(nil)
	assert.False(t, s.Done())
}
