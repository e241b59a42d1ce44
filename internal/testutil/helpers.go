// Package testutil provides reusable test helper functions for tone
// generator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all float samples are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertPeakNear verifies that the largest absolute sample value is within
// tolerance of the expected peak.
func AssertPeakNear(t *testing.T, s []int16, expected, tolerance float64) bool {
	t.Helper()
	var peak float64
	for _, v := range s {
		if abs := math.Abs(float64(v)); abs > peak {
			peak = abs
		}
	}
	return assert.InDelta(t, expected, peak, tolerance,
		"peak magnitude = %f, want %f", peak, expected)
}

// SignChanges counts sign transitions in a PCM signal, skipping exact
// zeros. A sine of frequency f sampled for d seconds has about 2·f·d of
// them.
func SignChanges(s []int16) int {
	changes := 0
	prev := 0
	for _, v := range s {
		sign := 0
		switch {
		case v > 0:
			sign = 1
		case v < 0:
			sign = -1
		default:
			continue
		}
		if prev != 0 && sign != prev {
			changes++
		}
		prev = sign
	}
	return changes
}
