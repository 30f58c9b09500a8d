// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-shipmotor/pkg/input"
)

// AxisReader reads analog axes from engo's global input manager. It reports
// input.ErrInputUnavailable until engo has created the manager.
type AxisReader struct{}

// Axis implements input.AxisReader.
func (AxisReader) Axis(name string) (float64, error) {
	if engo.Input == nil {
		return 0, input.ErrInputUnavailable
	}
	return float64(engo.Input.Axis(name).Value()), nil
}

var _ input.AxisReader = AxisReader{}

// SetupAxisBindings registers the axes ControllerProvider polls: A/D and the
// left/right arrows drive the horizontal axis, S/W and down/up drive the
// vertical axis.
func SetupAxisBindings() {
	engo.Input.RegisterAxis(input.AxisHorizontal,
		engo.AxisKeyPair{Min: engo.KeyA, Max: engo.KeyD},
		engo.AxisKeyPair{Min: engo.KeyArrowLeft, Max: engo.KeyArrowRight},
	)
	engo.Input.RegisterAxis(input.AxisVertical,
		engo.AxisKeyPair{Min: engo.KeyS, Max: engo.KeyW},
		engo.AxisKeyPair{Min: engo.KeyArrowDown, Max: engo.KeyArrowUp},
	)

	engo.Input.RegisterButton("quit", engo.KeyEscape)
}
