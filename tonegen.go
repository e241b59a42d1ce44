package tonegen

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-tone-generator/internal/synth"
)

// Spec describes a single test tone. The zero value is not usable on its
// own: Frequency and Duration must be set by the caller, while SampleRate
// and Amplitude fall back to package defaults when left zero.
type Spec struct {
	// Frequency is the tone frequency in Hz. Must be positive. Frequencies
	// at or above SampleRate/2 alias silently (see package documentation).
	Frequency float64

	// Duration is the tone length in seconds. Must be positive.
	Duration float64

	// SampleRate is the output sample rate in Hz.
	// Zero selects DefaultSampleRate (44100).
	SampleRate int

	// Amplitude is the peak level as a fraction of full scale, in (0, 1].
	// Zero selects DefaultAmplitude (0.3).
	Amplitude float64
}

// Common errors returned by the package.
var (
	// ErrInvalidSpec indicates invalid tone parameters.
	ErrInvalidSpec = errors.New("invalid tone spec")

	// ErrEncoding indicates the WAV container could not be produced or
	// written.
	ErrEncoding = errors.New("wav encoding failed")
)

// WithDefaults returns a copy of the spec with zero-valued SampleRate and
// Amplitude replaced by the package defaults.
func (s Spec) WithDefaults() Spec {
	if s.SampleRate == 0 {
		s.SampleRate = DefaultSampleRate
	}
	if s.Amplitude == 0 {
		s.Amplitude = DefaultAmplitude
	}
	return s
}

// Validate checks if the spec is valid. Defaults are not applied; call
// WithDefaults first when validating a partially filled spec.
func (s Spec) Validate() error {
	if s.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidSpec, s.Frequency)
	}

	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidSpec, s.Duration)
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidSpec, s.SampleRate)
	}

	if s.Amplitude <= 0 || s.Amplitude > maxAmplitude {
		return fmt.Errorf("%w: amplitude must be in (0, %v], got %v", ErrInvalidSpec, maxAmplitude, s.Amplitude)
	}

	return nil
}

// NumSamples returns the buffer length the spec synthesizes to:
// round(SampleRate × Duration), after applying defaults.
func (s Spec) NumSamples() int {
	s = s.WithDefaults()
	return int(math.Round(float64(s.SampleRate) * s.Duration))
}

// Nyquist returns the highest representable frequency for the spec's sample
// rate, after applying defaults.
func (s Spec) Nyquist() float64 {
	s = s.WithDefaults()
	return float64(s.SampleRate) / nyquistDivisor
}

// Synthesize generates the tone described by spec as signed 16-bit PCM.
//
// The result has exactly spec.NumSamples() samples; sample i is
// round(Amplitude × sin(2π·Frequency·i/SampleRate) × 32767) clamped to the
// int16 range. Identical specs produce identical buffers.
func Synthesize(spec Spec) ([]int16, error) {
	raw, err := SynthesizeFloat(spec)
	if err != nil {
		return nil, err
	}

	quantized := make([]int16, len(raw))
	synth.Quantize16(raw, quantized)
	return quantized, nil
}

// SynthesizeFloat is like Synthesize but returns the amplitude-scaled
// float64 signal before quantization. Useful for spectral analysis where
// quantization noise is unwanted.
func SynthesizeFloat(spec Spec) ([]float64, error) {
	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	osc := synth.NewOscillator(spec.Frequency, spec.SampleRate, spec.Amplitude)
	out := make([]float64, spec.NumSamples())
	osc.Generate(out)
	return out, nil
}
