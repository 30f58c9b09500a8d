package engo

import (
	"context"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipmotor/pkg/entity"
)

// ShipSystem advances ships once per engo frame. A ship whose pose is a
// SpacePose moves the same SpaceComponent the render system draws.
type ShipSystem struct {
	ships []*entity.Ship
}

// NewShipSystem creates an empty ship system.
func NewShipSystem() *ShipSystem {
	return &ShipSystem{}
}

// Add registers a started ship.
func (s *ShipSystem) Add(ship *entity.Ship) {
	s.ships = append(s.ships, ship)
}

// Remove satisfies the ecs.System interface. The removed ship is stopped.
func (s *ShipSystem) Remove(basic ecs.BasicEntity) {
	for i, ship := range s.ships {
		if ship.ID() == basic.ID() {
			ship.Stop(context.Background())
			s.ships = append(s.ships[:i], s.ships[i+1:]...)
			return
		}
	}
}

// Update satisfies the ecs.System interface: it polls and ticks every ship.
func (s *ShipSystem) Update(dt float32) {
	for _, ship := range s.ships {
		ship.Update(float64(dt))
	}
}

// Len returns the number of ships in the system.
func (s *ShipSystem) Len() int {
	return len(s.ships)
}

var _ ecs.System = (*ShipSystem)(nil)
