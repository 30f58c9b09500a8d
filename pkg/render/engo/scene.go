// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/entity"
	"github.com/opd-ai/go-shipmotor/pkg/event"
	"github.com/opd-ai/go-shipmotor/pkg/input"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
)

const shipSize = 24

// shipView bundles the engo components of one ship.
type shipView struct {
	*entity.Ship
	common.RenderComponent
	common.SpaceComponent
}

// ShipScene shows configured ships in an engo window.
type ShipScene struct {
	config   *config.Config
	eventBus *event.Bus
	logger   *logging.Logger

	world  *ecs.World
	system *ShipSystem
	views  []*shipView
}

// NewShipScene creates a scene for cfg. Ships are built in Setup.
func NewShipScene(cfg *config.Config, eventBus *event.Bus, logger *logging.Logger) *ShipScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ShipScene{
		config:   cfg,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Type returns the scene type (required by Engo)
func (scene *ShipScene) Type() string {
	return "ShipScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *ShipScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *ShipScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	scene.world = world

	common.SetBackground(color.RGBA{R: 10, G: 12, B: 24, A: 255})
	SetupAxisBindings()

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	scene.system = NewShipSystem()
	scene.world.AddSystem(scene.system)
	scene.world.AddSystem(&quitSystem{})

	ctx := logging.WithCorrelationID(context.Background(), "")
	if err := scene.spawnShips(ctx); err != nil {
		scene.logger.Error(ctx, "Failed to start ships", err)
		engo.Exit()
		return
	}

	for _, view := range scene.views {
		renderSystem.Add(&view.BasicEntity, &view.RenderComponent, &view.SpaceComponent)
	}
}

// spawnShips builds one ship per configured slot, spread across the window.
func (scene *ShipScene) spawnShips(ctx context.Context) error {
	settings := scene.config.Ship
	factory := input.NewFactory(AxisReader{}, input.SeededRandom(settings.AISeed))

	count := scene.config.Simulation.Ships
	if count < 1 {
		count = 1
	}

	width, height := engo.GameWidth(), engo.GameHeight()
	for i := 0; i < count; i++ {
		view := &shipView{
			RenderComponent: common.RenderComponent{
				Drawable: common.Triangle{},
				Color:    color.RGBA{R: 120, G: 200, B: 255, A: 255},
			},
			SpaceComponent: common.SpaceComponent{
				Width:  shipSize,
				Height: shipSize,
			},
		}
		view.SpaceComponent.SetCenter(engo.Point{
			X: width * float32(i+1) / float32(count+1),
			Y: height / 2,
		})

		view.Ship = entity.NewShip(settings, factory, NewSpacePose(&view.SpaceComponent),
			entity.WithEventBus(scene.eventBus),
			entity.WithLogger(scene.logger),
		)
		if err := view.Ship.Start(ctx); err != nil {
			return err
		}

		scene.system.Add(view.Ship)
		scene.views = append(scene.views, view)
	}
	return nil
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *ShipScene) Exit() {
	ctx := context.Background()
	for _, view := range scene.views {
		view.Ship.Stop(ctx)
	}
}

// quitSystem closes the window when the quit button is pressed.
type quitSystem struct{}

func (*quitSystem) Remove(ecs.BasicEntity) {}

func (*quitSystem) Update(float32) {
	if engo.Input.Button("quit").JustPressed() {
		engo.Exit()
	}
}
