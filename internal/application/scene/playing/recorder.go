package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/starcatcher/internal/application/replay"
	"github.com/younwookim/starcatcher/internal/application/system"
)

// Recorder collects the input of every simulated frame.
type Recorder struct {
	data      replay.ReplayData
	recording bool
}

// NewRecorder starts a recording for a run seeded with seed.
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // about a minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one frame of input.
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), in))
}

// Finish stops the recording and stores how the run ended.
func (r *Recorder) Finish(outcome replay.Outcome) {
	r.recording = false
	r.data.Outcome = &outcome
}

// Save writes the recording to filename.
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

func (r *Recorder) Stop() {
	r.recording = false
}

func (r *Recorder) IsRecording() bool {
	return r.recording
}

func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay.
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
