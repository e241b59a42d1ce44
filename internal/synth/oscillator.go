// Package synth implements the sine oscillator and PCM quantizer behind the
// public tonegen API.
package synth

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// Oscillator is a fixed-frequency sine source that can be drained in chunks.
// The phase is carried as an absolute sample index, so generating a signal
// in several Generate calls is bit-identical to generating it in one call.
// Oscillator is not safe for concurrent use; distinct instances share no
// state and need no locking.
type Oscillator struct {
	step float64 // phase increment per sample, in radians
	amp  float64
	pos  int // absolute index of the next sample
}

// NewOscillator creates a sine oscillator. Inputs are assumed validated by
// the caller; frequencies above sampleRate/2 alias rather than fail.
func NewOscillator(frequency float64, sampleRate int, amplitude float64) *Oscillator {
	return &Oscillator{
		step: twoPi * frequency / float64(sampleRate),
		amp:  amplitude,
	}
}

// Generate fills dst with the next len(dst) amplitude-scaled samples and
// advances the oscillator. It returns the number of samples written, which
// is always len(dst).
func (o *Oscillator) Generate(dst []float64) int {
	for i := range dst {
		dst[i] = math.Sin(o.step * float64(o.pos+i))
	}
	f64.Scale(dst, dst, o.amp)

	o.pos += len(dst)
	return len(dst)
}

// Pos returns the absolute index of the next sample to be generated.
func (o *Oscillator) Pos() int {
	return o.pos
}

// Reset rewinds the oscillator to sample index zero.
func (o *Oscillator) Reset() {
	o.pos = 0
}

// Quantize16 converts normalized float samples to signed 16-bit PCM:
// round(src[i] × 32767), clamped to the int16 range. dst and src must have
// equal length.
func Quantize16(src []float64, dst []int16) {
	for i, s := range src {
		v := math.Round(s * maxSample16)
		if v > maxSample16 {
			v = maxSample16
		} else if v < minSample16 {
			v = minSample16
		}
		dst[i] = int16(v)
	}
}
