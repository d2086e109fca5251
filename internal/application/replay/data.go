package replay

import (
	"errors"

	"github.com/younwookim/starcatcher/internal/application/system"
)

const Version = "2.0"

var ErrNoFrames = errors.New("replay has no frames")

// ErrNoStage is returned for recordings that do not name their stage.
var ErrNoStage = errors.New("replay has no stage")

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	P bool `json:"p,omitempty"` // Pause toggle
}

// NewFrameInput captures in as frame f.
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{F: f, L: in.Left, R: in.Right, U: in.Up, P: in.Pause}
}

// State converts the frame back into an input state.
func (fi FrameInput) State() system.InputState {
	return system.InputState{Left: fi.L, Right: fi.R, Up: fi.U, Pause: fi.P}
}

// Outcome is how the recorded run ended, kept so a replay can be verified.
type Outcome struct {
	Score  int  `json:"score"`
	Waves  int  `json:"waves"`
	Hit    bool `json:"hit"`
	Frames int  `json:"frames"` // simulated frames, pauses excluded
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Outcome   *Outcome     `json:"outcome,omitempty"`
}
