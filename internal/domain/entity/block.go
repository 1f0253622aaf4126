package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// Block is a solid, anchored box that can watch another object, such as
// a question block watching the knight.
type Block struct {
	Entity

	watched Object
	// OnWatchedContact, when set, is called when the watched object touches
	// the block.
	OnWatchedContact func(b *Block, from Direction)

	lastContact Direction
}

// NewBlock creates a block occupying r. watched may be nil.
func NewBlock(r geom.Rect, spriteID string, sprites SpriteFactory, watched Object, layer int) *Block {
	b := &Block{
		Entity: Entity{
			Kind:   KindBlock,
			Name:   "Block",
			Shape:  geom.FromRect(r),
			Layer:  layer,
			Flags:  Flags{Collidable: true, Fit: true},
			Motion: &Motion{Anchored: true},
		},
		watched: watched,
	}
	b.Anim.Sprite = sprite(sprites, spriteID)
	return b
}

// Watched returns the watched object, or nil.
func (b *Block) Watched() Object {
	return b.watched
}

// Watch replaces the watched object.
func (b *Block) Watch(obj Object) {
	b.watched = obj
}

// LastContact returns the side of the block last touched by the watched
// object, or DirNone.
func (b *Block) LastContact() Direction {
	return b.lastContact
}

func (b *Block) Collision(_ Context, other Object, from Direction) bool {
	if b.watched == nil || other != b.watched {
		return false
	}
	b.lastContact = from
	if b.OnWatchedContact != nil {
		b.OnWatchedContact(b, from)
	}
	return true
}
