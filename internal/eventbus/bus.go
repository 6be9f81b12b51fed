package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdf-reader/internal/logger"
	"pdf-reader/internal/router"
)

// MenuEvent is the event type carrying forwarded menu activation ids.
const MenuEvent = "menu-event"

type Event struct {
	ID        uuid.UUID
	Type      string
	Timestamp time.Time
	Payload   string
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a function to EventHandler under a fixed id.
type HandlerFunc struct {
	id string
	fn func(Event)
}

func NewHandlerFunc(id string, fn func(Event)) *HandlerFunc {
	return &HandlerFunc{id: id, fn: fn}
}

func (h *HandlerFunc) Handle(event Event) { h.fn(event) }
func (h *HandlerFunc) GetID() string      { return h.id }

// Bus delivers published events to subscribers on a single worker, in
// publish order. Publishing never blocks: a full buffer or a stopped bus
// drops the event.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	logger      logger.Logger
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if log == nil {
		log = logger.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		logger:      log,
	}

	bus.startWorker()
	return bus
}

// Publish stamps the event and queues it. It reports whether the event was
// accepted.
func (b *Bus) Publish(event Event) bool {
	if b.ctx.Err() != nil {
		return false
	}
	event.ID = uuid.New()
	event.Timestamp = time.Now()

	select {
	case b.buffer <- event:
		return true
	case <-b.ctx.Done():
		return false
	default:
		b.logger.Warning("EventBus", "buffer full, event dropped", map[string]interface{}{
			"type":    event.Type,
			"payload": event.Payload,
		})
		return false
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Surface adapts the bus as the router's receiving surface: every activation
// becomes a MenuEvent with the id as payload.
func (b *Bus) Surface() router.Handler {
	return func(a router.Activation) {
		b.Publish(Event{Type: MenuEvent, Payload: a.ID})
	}
}

// Shutdown stops the worker. Queued events that were not yet dispatched are
// discarded.
func (b *Bus) Shutdown() {
	b.cancel()
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				return
			}
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.safeHandle(handler, event)
	}
}

func (b *Bus) safeHandle(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"handler": h.GetID(),
				"type":    event.Type,
			})
		}
	}()
	h.Handle(event)
}
