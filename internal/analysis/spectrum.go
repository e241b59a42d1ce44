// Package analysis provides spectral checks for generated test tones, used
// to verify that a synthesized signal carries the frequency it claims.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// minSamplesForFFT is the shortest signal worth analyzing. Below this
	// the bin resolution is meaningless for pitch verification.
	minSamplesForFFT = 16

	// logFloor keeps log-magnitude interpolation away from log(0) when a
	// neighboring bin is exactly zero.
	logFloor = 1e-300
)

// DominantFrequency estimates the strongest frequency component of a mono
// signal in Hz using a real FFT with parabolic interpolation of the peak
// bin on the log-magnitude spectrum. The DC bin is ignored. Signals shorter
// than minSamplesForFFT return 0.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	n := len(samples)
	if n < minSamplesForFFT || sampleRate <= 0 {
		return 0
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	// Find the peak magnitude bin, skipping DC.
	peak := 1
	peakMag := cmplx.Abs(coeffs[1])
	for i := 2; i < len(coeffs); i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > peakMag {
			peak = i
			peakMag = mag
		}
	}

	// Parabolic interpolation refines the estimate between bins.
	binOffset := 0.0
	if peak > 1 && peak < len(coeffs)-1 {
		a := math.Log(cmplx.Abs(coeffs[peak-1]) + logFloor)
		b := math.Log(peakMag + logFloor)
		c := math.Log(cmplx.Abs(coeffs[peak+1]) + logFloor)
		if denom := a - 2*b + c; denom != 0 {
			binOffset = 0.5 * (a - c) / denom
		}
	}

	return (float64(peak) + binOffset) * float64(sampleRate) / float64(n)
}

// RMS returns the root mean square level of the signal. A full-scale sine
// has an RMS of 1/√2 ≈ 0.707.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sumSquares := f64.DotProductUnsafe(samples, samples)
	return math.Sqrt(sumSquares / float64(len(samples)))
}

// ZeroCrossings counts sign changes in a PCM signal, skipping exact zeros.
// For a clean sine of frequency f over d seconds this approximates 2·f·d.
func ZeroCrossings(samples []int16) int {
	crossings := 0
	prev := 0 // -1, 0 (no sign seen yet) or +1
	for _, s := range samples {
		sign := 0
		switch {
		case s > 0:
			sign = 1
		case s < 0:
			sign = -1
		default:
			continue
		}
		if prev != 0 && sign != prev {
			crossings++
		}
		prev = sign
	}
	return crossings
}
