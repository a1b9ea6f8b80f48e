// Package events provides the adapter's owned publish/subscribe
// surface. The adapter composes a Bus rather than inheriting broadcast
// machinery; the host platform subscribes with On and the adapter
// publishes with Emit.
package events

import "sync"

// Payload is the event payload carried by every status emission. Every
// emission carries the configured adapter instance id, regardless of
// which status fired.
type Payload struct {
	ID string `json:"id"`
}

// HandlerFunc handles a single event emission.
type HandlerFunc func(payload Payload)

// Bus is a typed callback registry. Emit never fails and never blocks
// on registration; handlers run synchronously in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]HandlerFunc),
	}
}

// On registers a handler for the named event.
func (b *Bus) On(event string, handler HandlerFunc) {
	if handler == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[event] = append(b.handlers[event], handler)
}

// Emit delivers the payload to every handler registered for the event.
// Emitting an event with no subscribers is not an error.
func (b *Bus) Emit(event string, payload Payload) {
	b.mu.RLock()
	handlers := make([]HandlerFunc, len(b.handlers[event]))
	copy(handlers, b.handlers[event])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(payload)
	}
}
