package physics

// Pose is an in-memory position and heading on the ground plane. Heading
// is in degrees; see HeadingVector for the convention.
type Pose struct {
	Position Vector2D
	Heading  float64
}

// NewPose creates a pose at position facing heading degrees.
func NewPose(position Vector2D, heading float64) *Pose {
	return &Pose{Position: position, Heading: heading}
}

// Forward returns the unit vector the pose currently faces.
func (p *Pose) Forward() Vector2D {
	return HeadingVector(p.Heading)
}

// RotateAroundUp turns the pose by angle degrees. The stored heading is
// not wrapped; use NormalizeDegrees for display.
func (p *Pose) RotateAroundUp(angle float64) {
	p.Heading += angle
}

// TranslateAlongForward moves the pose distance units along Forward.
func (p *Pose) TranslateAlongForward(distance float64) {
	if distance == 0 {
		return
	}
	p.Position = p.Position.Add(p.Forward().Scale(distance))
}
