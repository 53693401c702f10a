package audio

import (
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes mono PCM16 samples to path as a 16-bit WAV file.
func WriteWAV(path string, samples []int16, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// WriteTempWAV writes the clip to a temp file and returns its path. The
// caller removes the file once the upload is done.
func WriteTempWAV(samples []int16, rate int) (string, error) {
	f, err := os.CreateTemp("", "clip-*.wav")
	if err != nil {
		return "", err
	}
	path := f.Name()
	f.Close()

	if err := WriteWAV(path, samples, rate); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
