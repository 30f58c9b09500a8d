// Package input produces the rotation/thrust signal pairs that drive a ship.
// Providers are polled once per tick by their owning entity and read by the
// motor afterwards.
package input

import "errors"

var (
	// ErrUnsupportedProviderKind is returned when a Kind outside the known
	// set is used to build a provider.
	ErrUnsupportedProviderKind = errors.New("unsupported provider kind")

	// ErrInputUnavailable is reported by axis readers that have no device
	// or input manager to read from.
	ErrInputUnavailable = errors.New("input device unavailable")
)

// SignalPair is a snapshot of the normalized control signal for one tick.
// Both values are expected in [-1, 1]; nothing downstream clamps them.
type SignalPair struct {
	Rotation float64
	Thrust   float64
}

// Provider is a source of control signals.
type Provider interface {
	// Poll refreshes the stored signal from the provider's source.
	Poll()
	// Rotation returns the last polled turn signal.
	Rotation() float64
	// Thrust returns the last polled forward signal.
	Thrust() float64
}

// SignalOf returns the current signal of p as a pair.
func SignalOf(p Provider) SignalPair {
	return SignalPair{Rotation: p.Rotation(), Thrust: p.Thrust()}
}
