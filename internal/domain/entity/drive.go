package entity

// Drive is the capability of objects that steer themselves: a sticky
// facing, a jump impulse and per-state sprites.
type Drive struct {
	Facing       Direction
	YJumpImpulse float64
	Sprites      map[string]SpriteHandle
}

// Track updates the facing from a horizontal velocity. Zero keeps the last
// facing.
func (d *Drive) Track(vx float64) {
	if dir := HorizontalOf(vx); dir != DirNone {
		d.Facing = dir
	}
}

// Sprite returns the sprite registered for state, or nil.
func (d *Drive) Sprite(state string) SpriteHandle {
	return d.Sprites[state]
}
