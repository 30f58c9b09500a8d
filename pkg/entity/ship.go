// pkg/entity/ship.go
package entity

import (
	"context"
	"fmt"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/event"
	"github.com/opd-ai/go-shipmotor/pkg/input"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
	"github.com/opd-ai/go-shipmotor/pkg/motor"
)

// Ship wires a configured input provider and a motor to a pose. It is the
// composition root for one ship: Start builds the object graph, Update runs
// one frame, Stop tears it down.
type Ship struct {
	ecs.BasicEntity

	settings config.ShipSettings
	factory  *input.Factory
	pose     motor.Pose
	speed    *motor.SpeedConfig

	provider input.Provider
	motor    *motor.Motor

	eventBus *event.Bus
	logger   *logging.Logger
}

// ShipOption customizes a Ship.
type ShipOption func(*Ship)

// WithEventBus publishes lifecycle events to bus.
func WithEventBus(bus *event.Bus) ShipOption {
	return func(s *Ship) { s.eventBus = bus }
}

// WithLogger sets the ship's logger.
func WithLogger(logger *logging.Logger) ShipOption {
	return func(s *Ship) { s.logger = logger }
}

// WithSpeed makes the ship read a shared speed preset instead of one derived
// from its settings. The preset must not be modified afterwards.
func WithSpeed(speed *motor.SpeedConfig) ShipOption {
	return func(s *Ship) { s.speed = speed }
}

// NewShip creates a ship that will move pose. Nothing is built until Start.
func NewShip(settings config.ShipSettings, factory *input.Factory, pose motor.Pose, opts ...ShipOption) *Ship {
	s := &Ship{
		BasicEntity: ecs.NewBasic(),
		settings:    settings,
		factory:     factory,
		pose:        pose,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	return s
}

// GetID returns the ship's entity ID.
func (s *Ship) GetID() ID {
	return ID(s.BasicEntity.ID())
}

// Start builds the input provider named by the settings and the motor that
// consumes it. An unsupported input type fails with
// input.ErrUnsupportedProviderKind and leaves the ship without a motor.
func (s *Ship) Start(ctx context.Context) error {
	if s.motor != nil {
		return nil
	}

	provider, err := s.factory.Create(s.settings.InputType)
	if err != nil {
		return s.failStart(ctx, fmt.Errorf("ship %d: create input provider: %w", s.GetID(), err))
	}
	if err := s.settings.Validate(); err != nil {
		return s.failStart(ctx, fmt.Errorf("ship %d: %w", s.GetID(), err))
	}

	speed := s.speed
	if speed == nil {
		speed = s.settings.Speed()
	}

	s.provider = provider
	s.motor = motor.New(provider, s.pose, speed)

	s.logger.Info(ctx, "Ship started",
		"ship_id", uint64(s.GetID()),
		"input_kind", s.settings.InputType.String(),
		"turn_speed", speed.TurnSpeed,
		"move_speed", speed.MoveSpeed,
	)
	s.publish(event.NewShipEvent(event.ShipStarted, s, uint64(s.GetID()), s.settings.InputType.String()))
	return nil
}

func (s *Ship) failStart(ctx context.Context, err error) error {
	s.logger.Error(ctx, "Ship failed to start", err,
		"ship_id", uint64(s.GetID()),
		"input_kind", s.settings.InputType.String(),
	)
	e := event.NewShipEvent(event.ShipStartFailed, s, uint64(s.GetID()), s.settings.InputType.String())
	e.Err = err
	s.publish(e)
	return err
}

// Update polls the provider and then ticks the motor with deltaTime
// seconds. It does nothing unless the ship is running.
func (s *Ship) Update(deltaTime float64) {
	if s.motor == nil {
		return
	}
	s.provider.Poll()
	s.motor.Tick(deltaTime)
}

// Stop releases the provider and motor. A stopped ship can be started again.
func (s *Ship) Stop(ctx context.Context) {
	if s.motor == nil {
		return
	}
	s.provider = nil
	s.motor = nil

	s.logger.Info(ctx, "Ship stopped", "ship_id", uint64(s.GetID()))
	s.publish(event.NewShipEvent(event.ShipStopped, s, uint64(s.GetID()), s.settings.InputType.String()))
}

// Running reports whether the ship has been started and not stopped.
func (s *Ship) Running() bool {
	return s.motor != nil
}

// Signal returns the provider's last polled signal, or zero when stopped.
func (s *Ship) Signal() input.SignalPair {
	if s.provider == nil {
		return input.SignalPair{}
	}
	return input.SignalOf(s.provider)
}

// Pose returns the pose the ship moves.
func (s *Ship) Pose() motor.Pose {
	return s.pose
}

// Settings returns the ship's configuration.
func (s *Ship) Settings() config.ShipSettings {
	return s.settings
}

// Render draws the ship with r.
func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

func (s *Ship) publish(e event.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(e)
	}
}
