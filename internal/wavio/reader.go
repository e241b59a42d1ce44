package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// readChunkSamples is the decode buffer size in samples.
const readChunkSamples = 8192

// ReadFile decodes a mono 16-bit PCM WAV file and returns its samples and
// sample rate. Other channel counts and bit depths are rejected.
func ReadFile(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	if decoder.NumChans != numChannels {
		return nil, 0, fmt.Errorf("unsupported channel count %d in %s: want mono", decoder.NumChans, path)
	}
	if decoder.BitDepth != bitsPerSample {
		return nil, 0, fmt.Errorf("unsupported bit depth %d in %s: want %d-bit", decoder.BitDepth, path, bitsPerSample)
	}

	sampleRate := int(decoder.SampleRate)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:   make([]int, readChunkSamples),
	}

	samples := make([]int16, 0, readChunkSamples)
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		for _, v := range buf.Data[:n] {
			samples = append(samples, int16(v))
		}
	}

	return samples, sampleRate, nil
}
