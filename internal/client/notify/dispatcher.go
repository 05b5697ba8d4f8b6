package notify

import (
	"context"
	"sync"
)

// Dispatcher внутрипроцессная рассылка событий.
// Медленный подписчик теряет события, но не блокирует синхронизацию.
type Dispatcher struct {
	subscribers map[int64]chan Event
	nextID      int64
	bufferSize  int
	mu          sync.RWMutex
}

// NewDispatcher creates a dispatcher with a per-subscriber buffer.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subscribers: make(map[int64]chan Event),
		bufferSize:  16,
	}
}

// Subscribe registers a listener. The returned cleanup is also invoked
// when ctx is done.
func (d *Dispatcher) Subscribe(ctx context.Context) (<-chan Event, func()) {
	stream := make(chan Event, d.bufferSize)

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.subscribers[id] = stream
	d.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subscribers, id)
			d.mu.Unlock()
			close(stream)
			close(done)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cleanup()
		case <-done:
		}
	}()

	return stream, cleanup
}

// Publish implements Broadcaster.
func (d *Dispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, stream := range d.subscribers {
		select {
		case stream <- event:
		default:
		}
	}
	return nil
}

// Subscribers returns the number of active subscribers.
func (d *Dispatcher) Subscribers() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subscribers)
}
