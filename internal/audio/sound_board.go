package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundBoard plays hit feedback. It listens for event.HitApplied and never
// touches engine state. Without an initialized device every Play call is
// a silent no-op.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	cooldown  time.Duration
	lastGroan time.Time
	now       func() time.Time
}

// NewSoundBoard creates a sound board with the configured groan cooldown
func NewSoundBoard() *SoundBoard {
	return &SoundBoard{
		mixer:    &beep.Mixer{},
		cooldown: config.GroanCooldownMs * time.Millisecond,
		now:      time.Now,
	}
}

// Initialize opens the audio device
func (sb *SoundBoard) Initialize() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sb.mixer)
	sb.initialized = true
	return nil
}

// Cleanup stops every queued sound
func (sb *SoundBoard) Cleanup() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Lock()
	sb.mixer.Clear()
	speaker.Unlock()
	sb.initialized = false
}

// SetMuted mutes or unmutes all playback
func (sb *SoundBoard) SetMuted(muted bool) {
	sb.mu.Lock()
	sb.muted = muted
	sb.mu.Unlock()
}

// PlayWeapon queues the impact sound of a weapon
func (sb *SoundBoard) PlayWeapon(id defs.WeaponID) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.play(WeaponSound(id))
}

// PlayGroan queues a groan unless one was triggered within the cooldown
// window. It reports whether the gate let the groan through.
func (sb *SoundBoard) PlayGroan() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	now := sb.now()
	if !sb.lastGroan.IsZero() && now.Sub(sb.lastGroan) < sb.cooldown {
		return false
	}
	sb.lastGroan = now
	sb.play(GroanSound())
	return true
}

// play must be called with sb.mu held
func (sb *SoundBoard) play(s beep.Streamer) {
	if !sb.initialized || sb.muted {
		return
	}
	speaker.Lock()
	sb.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent реагирует на удары
func (sb *SoundBoard) OnEvent(e event.Event) {
	if e.Type != event.HitApplied {
		return
	}
	info, ok := e.Data.(event.HitInfo)
	if !ok {
		return
	}
	sb.PlayWeapon(info.Weapon.ID)
	sb.PlayGroan()
}
