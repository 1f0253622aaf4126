package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// Terrain is immutable level geometry.
type Terrain struct {
	Entity
}

// NewTerrain creates a static collider.
func NewTerrain(shape geom.RotRect, flags Flags, layer int) *Terrain {
	return &Terrain{Entity: Entity{
		Kind:  KindTerrain,
		Name:  "Terrain",
		Shape: shape,
		Layer: layer,
		Flags: flags,
	}}
}

// Update does nothing: terrain never moves.
func (t *Terrain) Update(Context, float64) {}
