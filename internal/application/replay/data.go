package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	J   bool `json:"j,omitempty"`   // Jump held
	JP  bool `json:"jp,omitempty"`  // JumpPressed
	JR  bool `json:"jr,omitempty"`  // JumpReleased
	Run bool `json:"run,omitempty"` // Run held
	Atk bool `json:"atk,omitempty"` // Attack pressed
}

// ReplayData contains all data needed to replay a play session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into new recordings.
const Version = "2.0"
