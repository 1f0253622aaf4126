package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// EntityID is a unique identifier for an entity. Ids are handed out by the
// world in increasing order and never reused.
type EntityID uint32

// Kind is the closed set of entity variants.
type Kind int

const (
	KindBody Kind = iota
	KindTerrain
	KindBlock
	KindPlayer
	KindEnemy
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBody:
		return "Body"
	case KindTerrain:
		return "Terrain"
	case KindBlock:
		return "Block"
	case KindPlayer:
		return "Knight"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Direction names the side of a collider involved in a contact, and the
// horizontal move intent of a moving body.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction seen from the other participant.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Sign returns -1 for left, +1 for right and 0 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// DirectionOf classifies a separation normal. n points away from the other
// collider, so a normal pointing up means our bottom edge hit its top edge.
func DirectionOf(n geom.Vec2) Direction {
	if abs(n.Y()) >= abs(n.X()) {
		if n.Y() < 0 {
			return DirDown
		}
		return DirUp
	}
	if n.X() < 0 {
		return DirRight
	}
	return DirLeft
}

// HorizontalOf returns the horizontal direction of v, or DirNone.
func HorizontalOf(v float64) Direction {
	switch {
	case v < 0:
		return DirLeft
	case v > 0:
		return DirRight
	default:
		return DirNone
	}
}

// Flags are the collision capabilities of an entity.
type Flags struct {
	// Collidable entities take part in collision detection.
	Collidable bool
	// Compenetrable entities report contacts but are never pushed out of,
	// nor push, anything.
	Compenetrable bool
	// Smashable entities can be defeated by the player.
	Smashable bool
	// Fit asks the renderer to stretch the sprite over the collider.
	Fit bool
}

// Solid is the flag set of static level geometry.
func Solid() Flags {
	return Flags{Collidable: true, Fit: true}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
