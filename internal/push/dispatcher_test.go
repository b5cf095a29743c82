//go:build unit

package push_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/push"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	mu      sync.Mutex
	batches [][]push.Message
	err     error
}

func (g *recordingGateway) Send(_ context.Context, messages []push.Message) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.batches = append(g.batches, messages)
	return g.err
}

func (g *recordingGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.batches)
}

func (g *recordingGateway) setErr(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

func newTestDispatcher(gw push.Gateway, queueSize int) *push.Dispatcher {
	cfg := config.NewTestConfig()
	cfg.Push.Workers = 1
	cfg.Push.QueueSize = queueSize
	return push.NewDispatcher(cfg, gw)
}

func TestDispatcher_DeliversEnqueuedBatches(t *testing.T) {
	gw := &recordingGateway{}
	d := newTestDispatcher(gw, 16)
	d.Start()

	ok := d.Enqueue([]push.Message{{To: "token-1", Title: "New Job", Body: "assigned"}})
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	require.Equal(t, 1, gw.count())
	assert.Equal(t, "token-1", gw.batches[0][0].To)
}

func TestDispatcher_EmptyBatchIsNoop(t *testing.T) {
	gw := &recordingGateway{}
	d := newTestDispatcher(gw, 16)
	d.Start()

	assert.True(t, d.Enqueue(nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.Equal(t, 0, gw.count())
}

func TestDispatcher_DeliveryFailureDoesNotStopWorker(t *testing.T) {
	gw := &recordingGateway{}
	gw.setErr(errors.New("gateway unavailable"))
	d := newTestDispatcher(gw, 16)
	d.Start()

	require.True(t, d.Enqueue([]push.Message{{To: "token-1", Body: "first"}}))
	require.Eventually(t, func() bool { return gw.count() == 1 }, time.Second, 10*time.Millisecond,
		"failing batch should still reach the gateway")

	// the failed send is logged and swallowed, later batches still deliver
	gw.setErr(nil)
	require.True(t, d.Enqueue([]push.Message{{To: "token-2", Body: "second"}}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	require.Equal(t, 2, gw.count())
	assert.Equal(t, "token-2", gw.batches[1][0].To)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	gw := &recordingGateway{}
	d := newTestDispatcher(gw, 1)
	// Workers never started, so the queue fills and stays full.

	assert.True(t, d.Enqueue([]push.Message{{To: "a"}}))
	assert.False(t, d.Enqueue([]push.Message{{To: "b"}}))
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	gw := &recordingGateway{}
	d := newTestDispatcher(gw, 16)
	d.Start()

	for i := 0; i < 5; i++ {
		require.True(t, d.Enqueue([]push.Message{{To: "token", Body: "b"}}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.Equal(t, 5, gw.count())
}
