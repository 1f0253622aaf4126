package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/platformer/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Input(fi), true
}

// Input converts a recorded frame back into input state.
func Input(fi FrameInput) system.InputState {
	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		Jump:         fi.J,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		Run:          fi.Run,
		Attack:       fi.Atk,
	}
}

// Frame converts input state into a recorded frame.
func Frame(n int, in system.InputState) FrameInput {
	return FrameInput{
		F:   n,
		L:   in.Left,
		R:   in.Right,
		J:   in.Jump,
		JP:  in.JumpPressed,
		JR:  in.JumpReleased,
		Run: in.Run,
		Atk: in.Attack,
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Idle creates replay data with no input (the knight just stands)
func Idle(level string, frames int) ReplayData {
	data := ReplayData{
		Version: Version,
		Level:   level,
		Frames:  make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i].F = i
	}
	return data
}
