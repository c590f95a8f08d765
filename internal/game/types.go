package game

import "time"

// RunState is the phase a single maze run is in.
type RunState int

const (
	StateGenerating RunState = iota // carving the maze one step per tick
	StatePlaying                    // player walking to the goal
	StateWon                        // goal reached, waiting to start the next run
)

func (s RunState) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Clock pauses the game loop between runs.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

// Sleep blocks the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Sound is the audio the game triggers. Calls must not block.
type Sound interface {
	StartMusic()
	PlayBump()
	PlayVictory()
}

// NoSound is used when audio is muted or the speaker could not be opened.
type NoSound struct{}

func (NoSound) StartMusic()  {}
func (NoSound) PlayBump()    {}
func (NoSound) PlayVictory() {}
