package system

import "github.com/younwookim/platformer/internal/domain/entity"

// Intent represents an action that the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent sets the horizontal move direction (DirNone to stop).
type MoveIntent struct {
	Dir entity.Direction
}

func (MoveIntent) isIntent() {}

// JumpIntent presses (On) or releases the jump button.
type JumpIntent struct {
	On bool
}

func (JumpIntent) isIntent() {}

// RunIntent switches between run and walk.
type RunIntent struct {
	On bool
}

func (RunIntent) isIntent() {}

// AttackIntent opens an attack window.
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// Intents translates one frame of input into player intents, in the order
// they are applied.
func Intents(in InputState) []Intent {
	dir := entity.DirNone
	switch {
	case in.Left && !in.Right:
		dir = entity.DirLeft
	case in.Right && !in.Left:
		dir = entity.DirRight
	}

	out := []Intent{RunIntent{On: in.Run}, MoveIntent{Dir: dir}}
	if in.JumpPressed {
		out = append(out, JumpIntent{On: true})
	}
	if in.JumpReleased {
		out = append(out, JumpIntent{On: false})
	}
	if in.Attack {
		out = append(out, AttackIntent{})
	}
	return out
}

// Controllable is the player surface intents are applied to.
type Controllable interface {
	Move(dir entity.Direction)
	Jump(ctx entity.Context, on bool)
	Run(on bool)
	Attack(ctx entity.Context)
}

// Apply feeds intents to the player.
func Apply(ctx entity.Context, p Controllable, intents []Intent) {
	for _, in := range intents {
		switch it := in.(type) {
		case MoveIntent:
			p.Move(it.Dir)
		case JumpIntent:
			p.Jump(ctx, it.On)
		case RunIntent:
			p.Run(it.On)
		case AttackIntent:
			p.Attack(ctx)
		}
	}
}
