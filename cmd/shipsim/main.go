// Command shipsim runs ships headlessly and draws them in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/entity"
	"github.com/opd-ai/go-shipmotor/pkg/event"
	"github.com/opd-ai/go-shipmotor/pkg/input"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
	"github.com/opd-ai/go-shipmotor/pkg/physics"
	"github.com/opd-ai/go-shipmotor/pkg/render"
	"github.com/opd-ai/go-shipmotor/pkg/sim"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "ship.yaml", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	frames := flag.Uint64("frames", 0, "Stop after this many frames (0 runs until interrupted)")
	renderer := flag.String("renderer", "terminal", "Renderer type: 'terminal' or 'log'")
	width := flag.Int("width", 60, "Terminal view width in cells")
	height := flag.Int("height", 20, "Terminal view height in cells")
	scale := flag.Float64("scale", 2, "World units per terminal cell")
	turn := flag.Float64("turn", 0, "Horizontal axis value reported to controller ships")
	thrust := flag.Float64("thrust", 1, "Vertical axis value reported to controller ships")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}

	var view entity.Renderer
	switch *renderer {
	case "log":
		view = render.NewNullRenderer(logger)
	case "terminal":
		fallthrough
	default:
		view = render.NewTerminalRenderer(*width, *height, *scale)
	}

	runner, err := sim.NewRunner(cfg.Simulation, sim.WithRenderer(view), sim.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "Failed to create simulation", err)
		os.Exit(1)
	}
	defer runner.Release()

	// No input device in headless mode: controller ships hold a fixed stick.
	stick := input.AxisReaderFunc(func(name string) (float64, error) {
		if name == input.AxisHorizontal {
			return *turn, nil
		}
		return *thrust, nil
	})
	factory := input.NewFactory(stick, input.SeededRandom(cfg.Ship.AISeed))
	eventBus := event.NewEventBus()

	ships := make([]*entity.Ship, 0, cfg.Simulation.Ships)
	for i := 0; i < cfg.Simulation.Ships; i++ {
		ship := entity.NewShip(cfg.Ship, factory, physics.NewPose(physics.Vector2D{}, 0),
			entity.WithEventBus(eventBus),
			entity.WithLogger(logger),
		)
		if err := ship.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start ship", err)
			os.Exit(1)
		}
		ships = append(ships, ship)
		runner.Add(ship)
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = runner.Run(runCtx, *frames)
	for _, ship := range ships {
		ship.Stop(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}
}

// loadConfig reads path, falling back to defaults when it does not exist,
// and applies SHIP_* environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration", "config_path", path)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "apply environment configuration")
	}
	return cfg, nil
}
