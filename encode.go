package tonegen

import (
	"fmt"
	"os"

	"github.com/tphakala/go-tone-generator/internal/wavio"
)

// filePerm is the mode for WAV files written by WriteWAVFile.
const filePerm = 0o644

// EncodeWAV wraps samples in a mono 16-bit PCM RIFF/WAVE container at the
// given sample rate and returns the complete byte stream. An empty sample
// slice yields a valid container with a zero-length data chunk.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidSpec, sampleRate)
	}
	return wavio.Encode(samples, sampleRate), nil
}

// WriteWAVFile encodes samples as with EncodeWAV and writes the container
// to path. Storage failures are reported wrapped in ErrEncoding.
func WriteWAVFile(path string, samples []int16, sampleRate int) error {
	data, err := EncodeWAV(samples, sampleRate)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrEncoding, path, err)
	}
	return nil
}

// ReadWAVFile decodes a mono 16-bit PCM WAV file and returns its samples
// and sample rate. It is the inverse of WriteWAVFile and exists chiefly for
// round-trip verification of generated tones.
func ReadWAVFile(path string) ([]int16, int, error) {
	return wavio.ReadFile(path)
}
