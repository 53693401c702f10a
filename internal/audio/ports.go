package audio

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoInputDevice  = errors.New("no usable audio input device")
	ErrNoOutputDevice = errors.New("no usable audio output device")
	ErrNothingCaptured = errors.New("no audio captured")
)

// Recorder захватывает звук с дефолтного входа.
type Recorder interface {
	// Start begins a push-to-talk capture.
	Start() error
	// Stop ends the capture started by Start and returns the PCM16 samples.
	Stop() ([]int16, error)
	// Record captures for a fixed duration, blocking the caller.
	Record(ctx context.Context, d time.Duration) ([]int16, error)
}

// Player играет PCM16 на дефолтном выходе.
type Player interface {
	Play(samples []int16) error
}
