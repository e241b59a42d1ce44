// Command gen-notes writes a batch of sine-wave note files for exercising
// pitch-detection software.
//
// Usage:
//
//	gen-notes                          # C4, E4, G4, A4, C5 into the cwd
//	gen-notes -notes A4,D5 -dur 5      # custom note set, 5 second tones
//	gen-notes -dir testdata -amp 0.5   # write into a directory
//
// Each note becomes <note>_test.wav, e.g. A4_test.wav.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	tonegen "github.com/tphakala/go-tone-generator"
)

const (
	// CLI defaults
	defaultDuration  = 3.0 // seconds per note
	defaultAmplitude = 0.5 // louder than the package default, for detectors
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dur := flag.Float64("dur", defaultDuration, "Duration of each note in seconds")
	rate := flag.Int("rate", 0, "Sample rate in Hz (default 44100)")
	amp := flag.Float64("amp", defaultAmplitude, "Amplitude as a fraction of full scale in (0, 1]")
	dir := flag.String("dir", ".", "Directory to write the files into")
	notes := flag.String("notes", "", "Comma-separated note names (default the standard test set)")
	flag.Parse()

	noteList := tonegen.TestNotes()
	if *notes != "" {
		noteList = strings.Split(*notes, ",")
	}

	type generated struct {
		file string
		freq float64
	}
	results := make([]generated, 0, len(noteList))

	for _, note := range noteList {
		note = strings.TrimSpace(note)
		freq, err := tonegen.NoteFrequency(note)
		if err != nil {
			return err
		}

		spec := tonegen.Spec{
			Frequency:  freq,
			Duration:   *dur,
			SampleRate: *rate,
			Amplitude:  *amp,
		}.WithDefaults()

		samples, err := tonegen.Synthesize(spec)
		if err != nil {
			return err
		}

		path := filepath.Join(*dir, noteFileName(note))
		if err := tonegen.WriteWAVFile(path, samples, spec.SampleRate); err != nil {
			return err
		}
		results = append(results, generated{file: path, freq: freq})
	}

	fmt.Println("Generated test audio files:")
	for _, r := range results {
		fmt.Printf("  %s (%.2f Hz)\n", r.file, r.freq)
	}
	return nil
}

// noteFileName returns the file name for a note, e.g. A4_test.wav.
func noteFileName(note string) string {
	return strings.ToUpper(note[:1]) + note[1:] + "_test.wav"
}
