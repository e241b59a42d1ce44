package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRate = 44100

	// One second of audio gives 1 Hz bin spacing; parabolic interpolation
	// should land well inside that.
	freqTolerance = 0.5

	rmsTolerance = 1e-3
)

// sine returns amp·sin(2π·freq·i/rate) for n samples.
func sine(freq float64, rate, n int, amp float64) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / float64(rate)
	for i := range out {
		out[i] = amp * math.Sin(step*float64(i))
	}
	return out
}

func TestDominantFrequency_PureTones(t *testing.T) {
	tests := []struct {
		name string
		freq float64
	}{
		{"a4", 440},
		{"c4", 261.63},
		{"low_e1", 41.2},
		{"high_c8", 4186.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := sine(tt.freq, testRate, testRate, 0.5)
			got := DominantFrequency(signal, testRate)
			assert.InDelta(t, tt.freq, got, freqTolerance)
		})
	}
}

func TestDominantFrequency_ShortSignal(t *testing.T) {
	assert.Zero(t, DominantFrequency(sine(440, testRate, 8, 0.5), testRate))
	assert.Zero(t, DominantFrequency(nil, testRate))
}

func TestDominantFrequency_IgnoresDC(t *testing.T) {
	signal := sine(440, testRate, testRate, 0.1)
	for i := range signal {
		signal[i] += 0.8 // large DC offset
	}
	got := DominantFrequency(signal, testRate)
	assert.InDelta(t, 440.0, got, freqTolerance, "DC bin must not win over the tone")
}

func TestRMS(t *testing.T) {
	// A sine of amplitude a has RMS a/√2.
	signal := sine(440, testRate, testRate, 1.0)
	assert.InDelta(t, 1/math.Sqrt2, RMS(signal), rmsTolerance)

	half := sine(440, testRate, testRate, 0.5)
	assert.InDelta(t, 0.5/math.Sqrt2, RMS(half), rmsTolerance)

	assert.Zero(t, RMS(nil))
}

func TestZeroCrossings(t *testing.T) {
	// 10 Hz for one second at 1 kHz: 20 sign changes, give or take the
	// final period boundary.
	signal := sine(10, 1000, 1000, 0.5)
	pcm := make([]int16, len(signal))
	for i, v := range signal {
		pcm[i] = int16(math.Round(v * 32767))
	}

	got := ZeroCrossings(pcm)
	require.InDelta(t, 20, float64(got), 1)
}

func TestZeroCrossings_SilenceAndConstant(t *testing.T) {
	assert.Zero(t, ZeroCrossings(make([]int16, 100)), "silence has no crossings")

	constant := make([]int16, 100)
	for i := range constant {
		constant[i] = 1000
	}
	assert.Zero(t, ZeroCrossings(constant))
}
