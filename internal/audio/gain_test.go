package audio

import "testing"

func TestApplyGainClips(t *testing.T) {
	t.Parallel()

	in := []int16{1000, -1000, 30000, -30000}
	out := ApplyGain(in, 10.0)

	want := []int16{10000, -10000, 32767, -32768}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], out[i])
		}
	}
}

func TestApplyGainUnityIsNoop(t *testing.T) {
	t.Parallel()

	in := []int16{1, 2, 3}
	out := ApplyGain(in, 1.0)
	if &out[0] != &in[0] {
		t.Error("unity gain should return the input unchanged")
	}
}

func TestNormalizeScalesToFullRange(t *testing.T) {
	t.Parallel()

	out := Normalize([]int16{100, -50, 25})
	if out[0] != 32767 {
		t.Errorf("expected peak at 32767, got %d", out[0])
	}
	if out[1] >= 0 {
		t.Errorf("expected negative sample to stay negative, got %d", out[1])
	}
}

func TestNormalizeSilence(t *testing.T) {
	t.Parallel()

	in := []int16{0, 0, 0}
	out := Normalize(in)
	for i, s := range out {
		if s != 0 {
			t.Errorf("sample %d: silence must stay silent, got %d", i, s)
		}
	}
}

func TestDecodePCM16(t *testing.T) {
	t.Parallel()

	// little-endian: 1, -2, plus a trailing odd byte that is dropped
	b := []byte{0x01, 0x00, 0xFE, 0xFF, 0x7F}
	out := DecodePCM16(b)

	if len(out) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(out))
	}
	if out[0] != 1 || out[1] != -2 {
		t.Errorf("expected [1 -2], got %v", out)
	}
}
