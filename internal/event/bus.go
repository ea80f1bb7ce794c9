// Package event is a small subscribe/publish bus used to fan animation and
// simulation signals out to listeners (HUD, sound, recorders).
package event

import (
	"log/slog"
	"sync"
)

type HandlerFunc func(payload any)

// Bus dispatches synchronously, in subscription order: the locomotion tick
// publishes triggers whose ordering matters, so handlers run inline rather
// than on goroutines. Handlers must be quick.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]HandlerFunc)}
}

func (b *Bus) Subscribe(name string, handler HandlerFunc) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], handler)
}

func (b *Bus) Publish(name string, payload any) {
	b.mu.RLock()
	handlers := make([]HandlerFunc, len(b.handlers[name]))
	copy(handlers, b.handlers[name])
	b.mu.RUnlock()

	for _, handler := range handlers {
		dispatch(name, handler, payload)
	}
}

func dispatch(name string, handler HandlerFunc, payload any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked", "event", name, "panic", r)
		}
	}()
	handler(payload)
}
