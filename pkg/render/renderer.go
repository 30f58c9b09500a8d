// Package render draws ships for the headless simulator.
package render

import (
	"context"

	"github.com/opd-ai/go-shipmotor/pkg/entity"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
	"github.com/opd-ai/go-shipmotor/pkg/physics"
)

// NullRenderer logs ship state at debug level instead of drawing.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer. A nil logger uses logging.NewLogger.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	ctx := context.Background()
	if ship == nil {
		d.logger.Debug(ctx, "RenderShip called with nil ship")
		return
	}

	args := []any{
		"ship_id", uint64(ship.GetID()),
		"input_kind", ship.Settings().InputType.String(),
		"rotation", ship.Signal().Rotation,
		"thrust", ship.Signal().Thrust,
	}
	if pose, ok := ship.Pose().(*physics.Pose); ok {
		args = append(args,
			"x", pose.Position.X,
			"y", pose.Position.Y,
			"heading", pose.Heading,
		)
	}
	d.logger.Debug(ctx, "Ship state", args...)
}

var (
	_ entity.Renderer = (*NullRenderer)(nil)
	_ entity.Renderer = (*TerminalRenderer)(nil)
)
