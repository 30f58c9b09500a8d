package engo

import (
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// SpacePose moves an engo SpaceComponent. Rotation is in degrees, clockwise
// on screen; heading 0 faces up the screen.
type SpacePose struct {
	space *common.SpaceComponent
}

// NewSpacePose wraps space. The component stays owned by its entity.
func NewSpacePose(space *common.SpaceComponent) *SpacePose {
	return &SpacePose{space: space}
}

// RotateAroundUp turns the component about its center by angle degrees.
func (p *SpacePose) RotateAroundUp(angle float64) {
	if angle == 0 {
		return
	}
	center := p.space.Center()
	p.space.Rotation += float32(angle)
	p.space.SetCenter(center)
}

// TranslateAlongForward moves the component distance pixels along its
// heading.
func (p *SpacePose) TranslateAlongForward(distance float64) {
	if distance == 0 {
		return
	}
	step := p.Forward()
	step.MultiplyScalar(float32(distance))
	p.space.Position.Add(step)
}

// Forward returns the unit screen vector the component faces.
func (p *SpacePose) Forward() engo.Point {
	rad := float64(p.space.Rotation) * math.Pi / 180
	return engo.Point{X: float32(math.Sin(rad)), Y: float32(-math.Cos(rad))}
}

// Space returns the wrapped component.
func (p *SpacePose) Space() *common.SpaceComponent {
	return p.space
}
