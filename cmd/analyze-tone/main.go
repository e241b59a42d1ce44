// Command analyze-tone inspects a mono 16-bit WAV file and reports its
// dominant frequency, level and zero-crossing count. It verifies that
// generated test tones actually carry the pitch they claim.
//
// Usage:
//
//	analyze-tone tone_440hz.wav
//	analyze-tone -expect 440 -tol 1 A4_test.wav   # non-zero exit on mismatch
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	tonegen "github.com/tphakala/go-tone-generator"
	"github.com/tphakala/go-tone-generator/internal/analysis"
)

const (
	// defaultToleranceHz is the allowed deviation for -expect checks. One
	// second of audio gives 1 Hz bin resolution, so 1 Hz is a fair default.
	defaultToleranceHz = 1.0

	// fullScale16 normalizes int16 samples to [-1, 1].
	fullScale16 = 32767.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	expect := flag.Float64("expect", 0, "Expected dominant frequency in Hz (0 disables the check)")
	tol := flag.Float64("tol", defaultToleranceHz, "Allowed deviation from -expect in Hz")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("expected exactly one input file")
	}
	path := args[0]

	samples, rate, err := tonegen.ReadWAVFile(path)
	if err != nil {
		return err
	}

	floats := make([]float64, len(samples))
	for i, s := range samples {
		floats[i] = float64(s) / fullScale16
	}

	duration := float64(len(samples)) / float64(rate)
	dominant := analysis.DominantFrequency(floats, rate)
	rms := analysis.RMS(floats)
	crossings := analysis.ZeroCrossings(samples)

	fmt.Printf("%s:\n", path)
	fmt.Printf("  Samples: %d (%d Hz, %.3fs)\n", len(samples), rate, duration)
	fmt.Printf("  Dominant frequency: %.2f Hz\n", dominant)
	fmt.Printf("  RMS level: %.4f\n", rms)
	fmt.Printf("  Zero crossings: %d\n", crossings)

	if *expect > 0 {
		diff := math.Abs(dominant - *expect)
		if diff > *tol {
			return fmt.Errorf("dominant frequency %.2f Hz deviates from expected %.2f Hz by %.2f Hz (tolerance %.2f Hz)",
				dominant, *expect, diff, *tol)
		}
		fmt.Printf("  OK: within %.2f Hz of %.2f Hz\n", *tol, *expect)
	}
	return nil
}
