// Package audio plays the game's synthesized music and sound effects.
// Every call is fire-and-forget: if the speaker cannot be opened the
// manager stays silent and the game carries on.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config holds the audio settings the manager needs.
type Config struct {
	SampleRate   int
	MusicVolume  float64
	EffectVolume float64
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts streaming the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// add hands a streamer to the mixer while the speaker is not reading it.
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background loop. It is a no-op if already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = false
		speaker.Unlock()
		return
	}

	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusic(sm.rate), sm.cfg.MusicVolume)}
	sm.add(sm.music)
}

// PlayBump plays the wall-hit thud.
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(CreateBumpSound(sm.rate, sm.cfg.EffectVolume))
}

// PlayVictory plays the goal chime.
func (sm *SoundManager) PlayVictory() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(CreateVictorySound(sm.rate, sm.cfg.EffectVolume))
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer leaves it silent
	sm.music = nil
	sm.initialized = false
}
