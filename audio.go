package plume

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const audioSampleRate = beep.SampleRate(48000)

// Audio owns the speaker and a mixer that all sounds play through. One
// instance per process; the speaker is a global device. Unlike the rest of
// the runtime, Audio is safe for concurrent use because the speaker runs on
// its own goroutine.
type Audio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewAudio creates an audio system. Call Init before playing anything.
func NewAudio() *Audio {
	return &Audio{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (a *Audio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return nil
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("plume: failed to open speaker: %w", err)
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Close silences the mixer. The speaker device itself stays open; beep has
// no close, but an empty mixer produces silence.
func (a *Audio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	a.mixer.Clear()
	a.initialized = false
}

// Sound is a fully decoded sample buffer that can be played any number of
// times, overlapping.
type Sound struct {
	audio *Audio
	buf   *beep.Buffer
}

// LoadSound decodes a WAV file into memory, resampling to the mixer rate if
// needed.
func (a *Audio) LoadSound(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("plume: failed to open sound %q: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("plume: failed to decode sound %q: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  audioSampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate != audioSampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, audioSampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return &Sound{audio: a, buf: buf}, nil
}

// Play starts one playback of the sound. Concurrent playbacks mix together.
// A no-op before Init.
func (s *Sound) Play() {
	s.audio.mu.Lock()
	defer s.audio.mu.Unlock()
	if !s.audio.initialized {
		return
	}
	speaker.Lock()
	s.audio.mixer.Add(s.buf.Streamer(0, s.buf.Len()))
	speaker.Unlock()
}

// PlayLoop starts a looping playback and returns a control handle. Set
// Paused on the handle (under speaker.Lock) to stop it. A nil handle is
// returned before Init.
func (s *Sound) PlayLoop() *beep.Ctrl {
	s.audio.mu.Lock()
	defer s.audio.mu.Unlock()
	if !s.audio.initialized {
		return nil
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, s.buf.Streamer(0, s.buf.Len()))}
	speaker.Lock()
	s.audio.mixer.Add(ctrl)
	speaker.Unlock()
	return ctrl
}
