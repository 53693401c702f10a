package audio

// Normalize scales the clip so its peak hits full scale. Quiet mic input
// otherwise comes out too low for the STT services to pick up.
func Normalize(samples []int16) []int16 {
	var peak int16
	for _, s := range samples {
		if s == -32768 {
			return samples
		}
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		return samples
	}

	out := make([]int16, len(samples))
	scale := 32767.0 / float64(peak)
	for i, s := range samples {
		out[i] = clamp(float64(s) * scale)
	}
	return out
}

// ApplyGain multiplies samples by gain with clipping protection.
func ApplyGain(samples []int16, gain float64) []int16 {
	if gain == 1.0 || len(samples) == 0 {
		return samples
	}
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = clamp(float64(s) * gain)
	}
	return out
}

// DecodePCM16 converts little-endian PCM16 bytes to samples. A trailing odd
// byte is dropped.
func DecodePCM16(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(uint16(b[2*i]) | uint16(b[2*i+1])<<8)
	}
	return out
}

func clamp(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
