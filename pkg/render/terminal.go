package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/opd-ai/go-shipmotor/pkg/entity"
	"github.com/opd-ai/go-shipmotor/pkg/physics"
)

// headingGlyphs are indexed by heading octant, starting at north and going
// clockwise.
var headingGlyphs = []rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}

// TerminalRenderer draws ships as heading arrows on an ASCII grid, followed
// by one status line per ship. World +Y is drawn upwards.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
	status    []string
	out       io.Writer
	clearTerm bool
}

// NewTerminalRenderer creates a renderer of width x height cells, each
// covering scale world units, writing to stdout.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		width:     width,
		height:    height,
		buffer:    buffer,
		scale:     scale,
		out:       os.Stdout,
		clearTerm: true,
	}
	r.Clear()
	return r
}

// SetOutput redirects frames to w without terminal clearing sequences.
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
	r.clearTerm = false
}

// SetCenter sets the world position shown in the middle of the view.
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to buffer cells.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int(math.Floor((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2))
	screenY := int(math.Floor(-(pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2))
	return screenX, screenY
}

// Clear implements entity.Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.status = r.status[:0]
}

// RenderShip implements entity.Renderer. Ships whose pose is not a
// *physics.Pose only get a status line.
func (r *TerminalRenderer) RenderShip(ship *entity.Ship) {
	pose, ok := ship.Pose().(*physics.Pose)
	if !ok {
		r.status = append(r.status, fmt.Sprintf("ship %d (%s)", ship.GetID(), ship.Settings().InputType))
		return
	}

	x, y := r.worldToScreen(pose.Position)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyphFor(pose.Heading)
	}

	signal := ship.Signal()
	r.status = append(r.status, fmt.Sprintf("ship %d (%s) pos=(%.1f, %.1f) heading=%.1f turn=%+.2f thrust=%+.2f",
		ship.GetID(), ship.Settings().InputType,
		pose.Position.X, pose.Position.Y, physics.NormalizeDegrees(pose.Heading),
		signal.Rotation, signal.Thrust))
}

// Present implements entity.Renderer.
func (r *TerminalRenderer) Present() {
	var sb strings.Builder
	if r.clearTerm {
		sb.WriteString("\033[H\033[2J")
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	for _, line := range r.status {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	io.WriteString(r.out, sb.String())
}

func glyphFor(heading float64) rune {
	octant := int(math.Floor((physics.NormalizeDegrees(heading)+22.5)/45)) % len(headingGlyphs)
	return headingGlyphs[octant]
}
