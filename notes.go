package tonegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Equal-temperament tuning constants.
const (
	// a4Frequency is the concert pitch reference (A4 = 440 Hz).
	a4Frequency = 440.0

	// a4MIDINote is the MIDI note number of A4.
	a4MIDINote = 69

	// semitonesPerOctave is the number of semitones in an octave.
	semitonesPerOctave = 12

	// midiOctaveOffset maps scientific pitch octaves to MIDI octaves
	// (C-1 is MIDI note 0).
	midiOctaveOffset = 1

	// Valid octave range in scientific pitch notation.
	minOctave = -1
	maxOctave = 9
)

// semitoneFromC maps a note letter to its semitone offset within the octave.
var semitoneFromC = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// NoteFrequency returns the equal-temperament frequency in Hz of a note in
// scientific pitch notation, such as "A4", "C#3" or "Bb2". The note letter
// is case-insensitive; octaves -1 through 9 are accepted. Tuning reference
// is A4 = 440 Hz.
func NoteFrequency(name string) (float64, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("%w: note name %q too short", ErrInvalidSpec, name)
	}

	letter := name[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	semitone, ok := semitoneFromC[letter]
	if !ok {
		return 0, fmt.Errorf("%w: unknown note letter %q in %q", ErrInvalidSpec, string(name[0]), name)
	}

	rest := name[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		semitone++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		semitone--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: bad octave in note %q", ErrInvalidSpec, name)
	}
	if octave < minOctave || octave > maxOctave {
		return 0, fmt.Errorf("%w: octave %d out of range [%d, %d]", ErrInvalidSpec, octave, minOctave, maxOctave)
	}

	midi := (octave+midiOctaveOffset)*semitonesPerOctave + semitone
	return a4Frequency * math.Exp2(float64(midi-a4MIDINote)/semitonesPerOctave), nil
}

// TestNotes returns the note set used as pitch-detection reference signals,
// in ascending pitch order.
func TestNotes() []string {
	return []string{"C4", "E4", "G4", "A4", "C5"}
}
