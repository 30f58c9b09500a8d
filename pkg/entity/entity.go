// pkg/entity/entity.go
package entity

// ID is a unique identifier for an entity
type ID uint64

// Entity is anything the frame scheduler advances once per frame.
type Entity interface {
	GetID() ID
	Update(deltaTime float64)
}

// Renderer draws ships. Clear and Present bracket a frame.
type Renderer interface {
	Clear()
	RenderShip(ship *Ship)
	Present()
}
