// Command shipview shows ships in a window. Controller ships follow the
// WASD and arrow keys.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/event"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
	engorender "github.com/opd-ai/go-shipmotor/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "ship.yaml", "Path to configuration file (.json, .yaml or .yml)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	cfg := config.DefaultConfig()
	if _, err := os.Stat(*configPath); err == nil {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
	} else {
		logger.Info(ctx, "Configuration file not found, using default configuration", "config_path", *configPath)
	}
	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	eventBus := event.NewEventBus()
	eventBus.Subscribe(event.ShipStartFailed, func(e event.Event) {
		if shipEvent, ok := e.(*event.ShipEvent); ok {
			logger.Error(ctx, "Ship start failed", shipEvent.Err, "ship_id", shipEvent.ShipID)
		}
	})

	scene := engorender.NewShipScene(cfg, eventBus, logger)

	opts := engo.RunOptions{
		Title:      "Ship Motor",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
