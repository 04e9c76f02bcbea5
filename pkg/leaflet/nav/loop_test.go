package nav

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_DrainRunsInOrder(t *testing.T) {
	loop := NewLoop()

	var got []int
	loop.Post(func() { got = append(got, 1) })
	loop.Post(func() {
		got = append(got, 2)
		loop.Post(func() { got = append(got, 4) })
	})
	loop.Post(func() { got = append(got, 3) })

	assert.Equal(t, 4, loop.Drain())
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Zero(t, loop.Drain())
}

func TestLoop_GoPostsContinuation(t *testing.T) {
	loop := NewLoop()
	release := make(chan struct{})

	var got string
	loop.Go(func() func() {
		<-release
		return func() { got = "done" }
	})
	assert.EqualValues(t, 1, loop.Pending())

	assert.Zero(t, loop.Drain(), "Drain must not wait for background work")

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))

	assert.Equal(t, "done", got)
	assert.Zero(t, loop.Pending())
}

func TestLoop_GoWithoutContinuation(t *testing.T) {
	loop := NewLoop()
	loop.Go(func() func() { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))
	assert.Zero(t, loop.Pending())
}

func TestLoop_ReadySignals(t *testing.T) {
	loop := NewLoop()
	loop.Post(func() {})

	select {
	case <-loop.Ready():
	case <-time.After(time.Second):
		t.Fatal("Ready did not fire after Post")
	}
	assert.Equal(t, 1, loop.Drain())
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	ran := make(chan struct{})
	loop.Post(func() { close(ran) })

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	<-ran
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
}

func TestLoop_SettleTimesOut(t *testing.T) {
	loop := NewLoop()
	block := make(chan struct{})
	defer close(block)

	loop.Go(func() func() {
		<-block
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, loop.Settle(ctx), context.DeadlineExceeded)
}
