// pkg/render/engo/scene_test.go
package engo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/event"
)

func TestNewShipScene(t *testing.T) {
	cfg := config.DefaultConfig()
	bus := event.NewEventBus()

	scene := NewShipScene(cfg, bus, nil)

	assert.Same(t, cfg, scene.config)
	assert.Same(t, bus, scene.eventBus)
	assert.NotNil(t, scene.logger)
	assert.Equal(t, "ShipScene", scene.Type())
	assert.NotPanics(t, scene.Preload)
	assert.NotPanics(t, scene.Exit)
}
