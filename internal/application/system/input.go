package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Run          bool
	Attack       bool
}

var (
	leftKeys   = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys  = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	runKeys    = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	attackKeys = []ebiten.Key{ebiten.KeyJ, ebiten.KeyX}
)

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         anyPressed(leftKeys),
		Right:        anyPressed(rightKeys),
		Jump:         anyPressed(jumpKeys),
		JumpPressed:  anyJust(jumpKeys, inpututil.IsKeyJustPressed),
		JumpReleased: anyJust(jumpKeys, inpututil.IsKeyJustReleased),
		Run:          anyPressed(runKeys),
		Attack:       anyJust(attackKeys, inpututil.IsKeyJustPressed),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJust(keys []ebiten.Key, just func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if just(k) {
			return true
		}
	}
	return false
}
