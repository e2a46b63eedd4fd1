package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	clickPitch  = 880
	clickLength = 30 * time.Millisecond
)

// Sound plays feedback when the user edits the grid.
type Sound interface {
	Click()
}

// Speaker clicks through the system audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker opens the audio device. Callers treat an error as "run silent".
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{rate: sampleRate}, nil
}

// Click plays a short sine tone without blocking.
func (s *Speaker) Click() {
	if s == nil {
		return
	}
	if click, err := clickStreamer(s.rate); err == nil {
		speaker.Play(click)
	}
}

// Close releases the audio device.
func (s *Speaker) Close() {
	if s != nil {
		speaker.Close()
	}
}

func clickStreamer(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, clickPitch)
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(clickLength), sine), nil
}
