package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDispatcher_DrainRunsInOrderOnCaller(t *testing.T) {
	d := &QueueDispatcher{}
	var got []int

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Dispatch(func() { got = append(got, 1) })
		d.Dispatch(func() {
			got = append(got, 2)
			d.Dispatch(func() { got = append(got, 3) })
		})
	}()
	wg.Wait()

	// Nothing runs until drained
	assert.Empty(t, got)
	assert.Equal(t, 2, d.Len())

	assert.Equal(t, 3, d.Drain())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, d.Drain())
}
