package push

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"glass-dispatch/internal/pkg/config"
)

const sendTimeout = 15 * time.Second

// Dispatcher fans push batches out to a fixed pool of workers over a bounded
// queue. Enqueue never blocks the request path: when the queue is full the
// batch is dropped and logged.
type Dispatcher struct {
	gateway Gateway
	queue   chan []Message
	workers int

	wg   sync.WaitGroup
	once sync.Once
}

func NewDispatcher(cfg config.Config, gateway Gateway) *Dispatcher {
	return &Dispatcher{
		gateway: gateway,
		queue:   make(chan []Message, cfg.Push.QueueSize),
		workers: cfg.Push.Workers,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Stop closes the queue and waits for in-flight sends to finish.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.once.Do(func() { close(d.queue) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue hands a batch to the workers. Returns false when the batch was
// dropped because the queue is full.
func (d *Dispatcher) Enqueue(messages []Message) bool {
	if len(messages) == 0 {
		return true
	}

	select {
	case d.queue <- messages:
		return true
	default:
		slog.Warn("push queue full, dropping batch", "count", len(messages))
		return false
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for batch := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.gateway.Send(ctx, batch); err != nil {
			slog.Warn("push delivery failed", "count", len(batch), "error", err)
		}
		cancel()
	}
}
