package main

import (
	"fmt"
	"os"
	"strings"

	tonegen "github.com/tphakala/go-tone-generator"
	"github.com/tphakala/go-tone-generator/internal/synth"
	"github.com/tphakala/go-tone-generator/internal/wavio"
)

const (
	// streamThresholdSamples is the buffer length above which tones are
	// streamed to disk chunk by chunk instead of synthesized in one piece.
	// 1M samples is about 24 seconds at 44.1 kHz.
	streamThresholdSamples = 1 << 20

	// chunkSamples is the chunk size for streamed generation.
	chunkSamples = 65536
)

// buildSpec converts command line flags into a validated tone spec. A note
// name, when given, overrides the frequency flag.
func buildSpec(freq float64, note string, dur float64, rate int, amp float64) (tonegen.Spec, error) {
	if note != "" {
		f, err := tonegen.NoteFrequency(note)
		if err != nil {
			return tonegen.Spec{}, err
		}
		freq = f
	}

	spec := tonegen.Spec{
		Frequency:  freq,
		Duration:   dur,
		SampleRate: rate,
		Amplitude:  amp,
	}.WithDefaults()

	if err := spec.Validate(); err != nil {
		return tonegen.Spec{}, err
	}
	return spec, nil
}

// defaultOutputName derives the output file name from the tone parameters,
// e.g. tone_440hz.wav, or A4_test.wav when a note name was given.
func defaultOutputName(spec tonegen.Spec, note string) string {
	if note != "" {
		return normalizeNote(note) + "_test.wav"
	}
	return fmt.Sprintf("tone_%ghz.wav", spec.Frequency)
}

// normalizeNote upper-cases the note letter so file names are consistent
// regardless of how the note was typed.
func normalizeNote(note string) string {
	return strings.ToUpper(note[:1]) + note[1:]
}

// writeTone renders the spec to a WAV file. Short tones are synthesized in
// one buffer; long tones stream through the oscillator in chunks so memory
// use stays bounded.
func writeTone(path string, spec tonegen.Spec) error {
	if spec.NumSamples() <= streamThresholdSamples {
		samples, err := tonegen.Synthesize(spec)
		if err != nil {
			return err
		}
		return tonegen.WriteWAVFile(path, samples, spec.SampleRate)
	}
	return streamTone(path, spec)
}

// streamTone writes the tone in chunkSamples pieces via the streaming WAV
// writer. Output is bit-identical to the one-shot path.
func streamTone(path string, spec tonegen.Spec) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w, err := wavio.NewWriter(f, spec.SampleRate)
	if err != nil {
		return fmt.Errorf("failed to create WAV writer: %w", err)
	}

	osc := synth.NewOscillator(spec.Frequency, spec.SampleRate, spec.Amplitude)
	floatBuf := make([]float64, chunkSamples)
	pcmBuf := make([]int16, chunkSamples)

	remaining := spec.NumSamples()
	for remaining > 0 {
		n := min(remaining, chunkSamples)
		osc.Generate(floatBuf[:n])
		synth.Quantize16(floatBuf[:n], pcmBuf[:n])
		if err := w.WriteSamples(pcmBuf[:n]); err != nil {
			return fmt.Errorf("failed to write audio data: %w", err)
		}
		remaining -= n
	}

	return w.Close()
}
