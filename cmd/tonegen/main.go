// Command tonegen generates a sine-wave test tone as a mono 16-bit WAV
// file and optionally plays it through an external audio player.
//
// Usage:
//
//	tonegen -freq 440 -dur 3                 # write tone_440hz.wav
//	tonegen -note C4 -dur 3 -play            # generate and play middle C
//	tonegen -note A4 -loop                   # loop until Ctrl+C
//	tonegen -freq 1000 -dur 600 -o long.wav  # long tones stream to disk
//
// Played files are removed afterwards unless -keep or -o is given; files
// that are only generated are always kept.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tphakala/go-tone-generator/internal/player"
)

const (
	// CLI defaults
	defaultFrequency = 440.0 // A4 concert pitch
	defaultDuration  = 3.0   // seconds

	// loopGap is the pause between repetitions in loop mode.
	loopGap = 100 * time.Millisecond
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	freq := flag.Float64("freq", defaultFrequency, "Tone frequency in Hz")
	note := flag.String("note", "", "Note name in scientific pitch notation (e.g. A4, C#3); overrides -freq")
	dur := flag.Float64("dur", defaultDuration, "Tone duration in seconds")
	rate := flag.Int("rate", 0, "Sample rate in Hz (default 44100)")
	amp := flag.Float64("amp", 0, "Amplitude as a fraction of full scale in (0, 1] (default 0.3)")
	output := flag.String("o", "", "Output file path (default derived from the tone, e.g. tone_440hz.wav)")
	play := flag.Bool("play", false, "Play the generated file once")
	loop := flag.Bool("loop", false, "Play the generated file repeatedly until interrupted")
	keep := flag.Bool("keep", false, "Keep the generated file after playback")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	spec, err := buildSpec(*freq, *note, *dur, *rate, *amp)
	if err != nil {
		return err
	}

	if spec.Frequency >= spec.Nyquist() {
		log.Printf("warning: %g Hz is at or above the Nyquist limit (%g Hz) and will alias",
			spec.Frequency, spec.Nyquist())
	}

	outPath := *output
	if outPath == "" {
		outPath = defaultOutputName(spec, *note)
	}

	if *verbose {
		log.Printf("Frequency: %g Hz", spec.Frequency)
		log.Printf("Duration: %g s (%d samples)", spec.Duration, spec.NumSamples())
		log.Printf("Sample rate: %d Hz", spec.SampleRate)
		log.Printf("Amplitude: %g", spec.Amplitude)
		log.Printf("Output: %s", outPath)
	}

	if err := writeTone(outPath, spec); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%g Hz, %gs, %d Hz sample rate)\n",
		outPath, spec.Frequency, spec.Duration, spec.SampleRate)

	if !*play && !*loop {
		return nil
	}

	// Generated file is ephemeral when only produced for playback.
	if !*keep && *output == "" {
		defer func() { _ = os.Remove(outPath) }()
	}

	sink, err := player.Detect()
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Player: %s", sink.Program)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *loop {
		return playLoop(ctx, sink, outPath)
	}

	fmt.Printf("Playing %s...\n", outPath)
	return sink.Play(ctx, outPath)
}

// playLoop plays path repeatedly until the context is canceled. A canceled
// context is a normal stop, not an error.
func playLoop(ctx context.Context, sink player.Sink, path string) error {
	fmt.Printf("Playing %s in a loop, press Ctrl+C to stop...\n", path)

	for i := 1; ; i++ {
		if err := sink.Play(ctx, path); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nStopped.")
				return nil
			}
			return fmt.Errorf("loop %d: %w", i, err)
		}

		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return nil
		case <-time.After(loopGap):
		}
	}
}
