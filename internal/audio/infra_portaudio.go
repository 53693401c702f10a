package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// Init prepares the PortAudio runtime and checks that default devices exist.
// Call Terminate on shutdown.
func Init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	if _, err := portaudio.DefaultInputDevice(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	if _, err := portaudio.DefaultOutputDevice(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrNoOutputDevice, err)
	}
	return nil
}

func Terminate() {
	_ = portaudio.Terminate()
}

// PortAudioRecorder captures mono PCM16 from the default input device.
type PortAudioRecorder struct {
	rate int

	mu      sync.Mutex
	stream  *portaudio.Stream
	frames  []int16
	stop    chan struct{}
	done    chan struct{}
	running bool
}

func NewPortAudioRecorder(rate int) *PortAudioRecorder {
	return &PortAudioRecorder{rate: rate}
}

func (r *PortAudioRecorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("capture already running")
	}

	in := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(r.rate), len(in), in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}

	r.stream = stream
	r.frames = nil
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	r.running = true

	go r.loop(stream, in, r.stop, r.done)
	return nil
}

func (r *PortAudioRecorder) loop(stream *portaudio.Stream, in []int16, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}
		if err := stream.Read(); err != nil {
			// overflow on slow consumers is harmless, keep reading
			continue
		}
		r.mu.Lock()
		r.frames = append(r.frames, in...)
		r.mu.Unlock()
	}
}

func (r *PortAudioRecorder) Stop() ([]int16, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil, fmt.Errorf("capture not running")
	}
	stop, done, stream := r.stop, r.done, r.stream
	r.mu.Unlock()

	close(stop)
	<-done

	_ = stream.Stop()
	_ = stream.Close()

	r.mu.Lock()
	frames := r.frames
	r.frames = nil
	r.stream = nil
	r.running = false
	r.mu.Unlock()

	if len(frames) == 0 {
		return nil, ErrNothingCaptured
	}
	return Normalize(frames), nil
}

// Record captures for a fixed duration, blocking the caller.
func (r *PortAudioRecorder) Record(ctx context.Context, d time.Duration) ([]int16, error) {
	want := int(float64(r.rate) * d.Seconds())

	in := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(r.rate), len(in), in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer stream.Stop()

	frames := make([]int16, 0, want)
	for len(frames) < want {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stream.Read(); err != nil {
			continue
		}
		frames = append(frames, in...)
	}

	if len(frames) == 0 {
		return nil, ErrNothingCaptured
	}
	return Normalize(frames[:want]), nil
}

// PortAudioPlayer plays mono PCM16 on the default output device.
type PortAudioPlayer struct {
	rate int
	gain float64

	mu sync.Mutex // one playback at a time
}

func NewPortAudioPlayer(rate int, gain float64) *PortAudioPlayer {
	return &PortAudioPlayer{rate: rate, gain: gain}
}

func (p *PortAudioPlayer) Play(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	samples = ApplyGain(samples, p.gain)

	out := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(p.rate), len(out), &out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoOutputDevice, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoOutputDevice, err)
	}
	defer stream.Stop()

	for off := 0; off < len(samples); off += len(out) {
		n := copy(out, samples[off:])
		for i := n; i < len(out); i++ {
			out[i] = 0
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("playback write: %w", err)
		}
	}
	return nil
}
