// Package tonegen generates deterministic sine-wave test tones in pure Go.
//
// The package synthesizes single-frequency, mono, 16-bit PCM signals and
// wraps them in a standard RIFF/WAVE container. It exists to produce known
// reference signals for exercising pitch-detection software: every tone is
// fully determined by its [Spec], so two runs with the same parameters yield
// byte-identical files.
//
// # Features
//
//   - Deterministic sine synthesis with configurable frequency, duration,
//     sample rate and amplitude
//   - Minimal mono 16-bit PCM WAV encoding, in memory or streamed to disk
//   - Equal-temperament note lookup (A4 = 440 Hz reference)
//   - FFT-based verification of generated tones via gonum
//   - External-player playback through a pluggable sink, testable without
//     an audio device
//
// # Quick Start
//
// Generate one second of A4 and write it to disk:
//
//	spec := tonegen.Spec{Frequency: 440, Duration: 1.0}
//	samples, err := tonegen.Synthesize(spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tonegen.WriteWAVFile("a4.wav", samples, tonegen.DefaultSampleRate); err != nil {
//	    log.Fatal(err)
//	}
//
// For an in-memory container instead of a file:
//
//	data, err := tonegen.EncodeWAV(samples, tonegen.DefaultSampleRate)
//
// # Determinism
//
// [Synthesize] evaluates sample i as
//
//	round(amplitude × sin(2π·f·i/rate) × 32767)
//
// clamped to the signed 16-bit range. There is no randomness, dithering or
// hidden state; the buffer length is exactly round(rate × duration).
//
// # Aliasing
//
// No anti-aliasing filter is applied. Frequencies above rate/2 (the Nyquist
// limit) alias silently; callers that need spectrally clean output must keep
// the requested frequency below half the sample rate.
//
// # Command Line Tools
//
// Three commands build on the package: tonegen generates and optionally
// plays a single tone, gen-notes writes a batch of note test files, and
// analyze-tone verifies the dominant frequency of an existing WAV file.
package tonegen
