package state

// GameState represents the current state of a play session
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	// StateFrozen: the world is frozen while the knight dies.
	StateFrozen
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StateFrozen:
		return "Frozen"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world steps in this state. A frozen world
// still steps its freeze-immune objects.
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateFrozen
}
