// Package motor integrates a ship's control signal into pose changes.
package motor

import (
	"github.com/opd-ai/go-shipmotor/pkg/input"
)

// SpeedConfig holds the turn and move rates of a ship. A zero rate
// disables that axis of motion. It is read-only once a motor uses it and
// may be shared between motors.
type SpeedConfig struct {
	TurnSpeed float64 // angle units per second
	MoveSpeed float64 // distance units per second
}

// Pose is the externally owned position and orientation the motor moves.
type Pose interface {
	// RotateAroundUp turns the pose about its up axis by angle.
	RotateAroundUp(angle float64)
	// TranslateAlongForward moves the pose along its current forward axis.
	TranslateAlongForward(distance float64)
}

// Motor applies a provider's signal to a pose each tick.
type Motor struct {
	provider input.Provider
	pose     Pose
	speed    *SpeedConfig
}

// New creates a motor. The motor takes exclusive ownership of provider; pose
// and speed remain owned by the caller.
func New(provider input.Provider, pose Pose, speed *SpeedConfig) *Motor {
	return &Motor{
		provider: provider,
		pose:     pose,
		speed:    speed,
	}
}

// Provider returns the provider the motor reads from, so its owner can poll
// it before each tick.
func (m *Motor) Provider() input.Provider {
	return m.provider
}

// Tick rotates then translates the pose using the provider's current
// signal. It does not poll the provider.
func (m *Motor) Tick(elapsed float64) {
	rotation := m.provider.Rotation()
	thrust := m.provider.Thrust()

	m.pose.RotateAroundUp(rotation * elapsed * m.speed.TurnSpeed)
	m.pose.TranslateAlongForward(thrust * elapsed * m.speed.MoveSpeed)
}
