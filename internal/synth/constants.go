package synth

import "math"

// Quantization constants for signed 16-bit PCM.
const (
	// maxSample16 is the largest positive int16 sample value, also used as
	// the full-scale reference when quantizing.
	maxSample16 = 32767.0

	// minSample16 is the most negative int16 sample value.
	minSample16 = -32768.0
)

// twoPi is one full oscillation in radians.
const twoPi = 2 * math.Pi
