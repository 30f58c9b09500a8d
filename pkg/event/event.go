// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Ship lifecycle event types
const (
	ShipStarted     Type = "ship_started"
	ShipStartFailed Type = "ship_start_failed"
	ShipStopped     Type = "ship_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	ID   uint64
	Type Type
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatches events synchronously.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{ID: id, Type: eventType}
}

// Unsubscribe removes a handler. It reports whether the subscription was found.
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.Type]
	for i, reg := range regs {
		if reg.id == sub.ID {
			b.handlers[sub.Type] = append(regs[:i:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all handlers subscribed to its type. Handlers run
// on the caller's goroutine in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(event)
	}
}

// ShipEvent carries the state of a ship lifecycle change.
type ShipEvent struct {
	BaseEvent
	ShipID    uint64
	InputKind string
	Err       error
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, shipID uint64, inputKind string) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID:    shipID,
		InputKind: inputKind,
	}
}
