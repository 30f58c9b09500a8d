package input

// Axis names read by ControllerProvider.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
)

// AxisReader exposes the platform's analog axis state.
type AxisReader interface {
	Axis(name string) (float64, error)
}

// AxisReaderFunc adapts a function to AxisReader.
type AxisReaderFunc func(name string) (float64, error)

// Axis implements AxisReader.
func (f AxisReaderFunc) Axis(name string) (float64, error) {
	return f(name)
}

// unavailableAxes is used when no platform input has been wired.
type unavailableAxes struct{}

func (unavailableAxes) Axis(string) (float64, error) {
	return 0, ErrInputUnavailable
}

// ControllerProvider maps the horizontal axis to rotation and the vertical
// axis to thrust.
type ControllerProvider struct {
	axes   AxisReader
	signal SignalPair
}

// NewControllerProvider creates a provider reading from axes.
func NewControllerProvider(axes AxisReader) *ControllerProvider {
	if axes == nil {
		axes = unavailableAxes{}
	}
	return &ControllerProvider{axes: axes}
}

// Poll reads both axes. If either read fails the previous signal is kept
// as a whole. Values are not clamped.
func (c *ControllerProvider) Poll() {
	rotation, err := c.axes.Axis(AxisHorizontal)
	if err != nil {
		return
	}
	thrust, err := c.axes.Axis(AxisVertical)
	if err != nil {
		return
	}
	c.signal = SignalPair{Rotation: rotation, Thrust: thrust}
}

// Rotation implements Provider.
func (c *ControllerProvider) Rotation() float64 {
	return c.signal.Rotation
}

// Thrust implements Provider.
func (c *ControllerProvider) Thrust() float64 {
	return c.signal.Thrust
}
