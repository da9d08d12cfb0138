package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short feedback effects through a shared mixer
// Every method is safe to call before Initialize or after a failed Initialize
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound effect
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := NewEffect(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
