package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading GameState = iota // level not built yet
	StatePlaying
	StatePaused
	StateHit // physics frozen, waiting to leave the level
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateHit:
		return "Hit"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the level advances in this state.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
