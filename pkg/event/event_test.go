// pkg/event/event_test.go
package event

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventBus(t *testing.T) {
	bus := NewEventBus()

	require.NotNil(t, bus)
	assert.NotNil(t, bus.handlers)
	assert.Equal(t, uint64(1), bus.nextID)
}

func TestBaseEvent(t *testing.T) {
	e := &BaseEvent{EventType: ShipStopped, Source: "ship"}

	assert.Equal(t, ShipStopped, e.GetType())
	assert.Equal(t, "ship", e.GetSource())
}

func TestBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()

	var got []string
	first := bus.Subscribe(ShipStarted, func(e Event) { got = append(got, "first") })
	second := bus.Subscribe(ShipStarted, func(e Event) { got = append(got, "second") })
	bus.Subscribe(ShipStopped, func(e Event) { got = append(got, "stopped") })

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, ShipStarted, first.Type)

	bus.Publish(NewShipEvent(ShipStarted, nil, 1, "ai"))

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NotPanics(t, func() {
		bus.Publish(&BaseEvent{EventType: ShipStarted})
	})
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	sub := bus.Subscribe(ShipStopped, func(e Event) { calls++ })
	keep := bus.Subscribe(ShipStopped, func(e Event) { calls += 10 })

	assert.True(t, bus.Unsubscribe(sub))
	assert.False(t, bus.Unsubscribe(sub), "second unsubscribe finds nothing")
	assert.False(t, bus.Unsubscribe(nil))

	bus.Publish(&BaseEvent{EventType: ShipStopped})
	assert.Equal(t, 10, calls)

	assert.True(t, bus.Unsubscribe(keep))
	bus.Publish(&BaseEvent{EventType: ShipStopped})
	assert.Equal(t, 10, calls)
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		count int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(ShipStarted, func(e Event) {
				mu.Lock()
				count++
				mu.Unlock()
			})
			bus.Publish(&BaseEvent{EventType: ShipStopped})
		}()
	}
	wg.Wait()

	bus.Publish(&BaseEvent{EventType: ShipStarted})
	assert.Equal(t, 20, count)
}

func TestNewShipEvent(t *testing.T) {
	e := NewShipEvent(ShipStartFailed, "src", 42, "controller")
	e.Err = errors.New("bad kind")

	assert.Equal(t, ShipStartFailed, e.GetType())
	assert.Equal(t, "src", e.GetSource())
	assert.Equal(t, uint64(42), e.ShipID)
	assert.Equal(t, "controller", e.InputKind)
	assert.EqualError(t, e.Err, "bad kind")
}
