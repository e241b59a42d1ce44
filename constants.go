package tonegen

// Default synthesis parameters.
const (
	// DefaultSampleRate is the sample rate used when Spec.SampleRate is zero
	// (CD quality, Red Book standard).
	DefaultSampleRate = 44100

	// DefaultAmplitude is the amplitude used when Spec.Amplitude is zero.
	// 0.3 leaves ample headroom and is loud enough for pitch detection.
	DefaultAmplitude = 0.3
)

// PCM format constants.
const (
	// BitsPerSample is the sample bit depth of every buffer this package
	// produces. Only 16-bit PCM is supported.
	BitsPerSample = 16

	// NumChannels is the channel count of every buffer this package
	// produces. Only mono is supported.
	NumChannels = 1
)

// Amplitude limits
const (
	maxAmplitude = 1.0
)

// nyquistDivisor relates sample rate to the highest representable frequency.
const nyquistDivisor = 2
