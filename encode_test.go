package tonegen

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wavHeaderSize = 44

	// Header field offsets used by the layout tests.
	channelsOffset = 22
	rateOffset     = 24
	bitsOffset     = 34
	dataSizeOffset = 40
)

func TestEncodeWAV_RoundTrip(t *testing.T) {
	spec := Spec{Frequency: 440, Duration: 0.25, SampleRate: 44100, Amplitude: 0.5}
	samples, err := Synthesize(spec)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	require.NoError(t, WriteWAVFile(path, samples, spec.SampleRate))

	decoded, rate, err := ReadWAVFile(path)
	require.NoError(t, err)

	assert.Equal(t, spec.SampleRate, rate)
	assert.Equal(t, samples, decoded, "decoded samples must match the synthesized buffer sample for sample")
}

func TestEncodeWAV_HeaderLayout(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768}
	data, err := EncodeWAV(samples, 22050)
	require.NoError(t, err)
	require.Len(t, data, wavHeaderSize+len(samples)*2)

	assert.Equal(t, []byte("RIFF"), data[0:4])
	assert.Equal(t, []byte("WAVE"), data[8:12])
	assert.Equal(t, []byte("fmt "), data[12:16])
	assert.Equal(t, []byte("data"), data[36:40])

	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(data[channelsOffset:]), "mono")
	assert.EqualValues(t, 22050, binary.LittleEndian.Uint32(data[rateOffset:]))
	assert.EqualValues(t, 16, binary.LittleEndian.Uint16(data[bitsOffset:]), "16-bit")
	assert.EqualValues(t, len(samples)*2, binary.LittleEndian.Uint32(data[dataSizeOffset:]))

	// Raw little-endian sample bytes follow the header.
	assert.EqualValues(t, 100, int16(binary.LittleEndian.Uint16(data[wavHeaderSize+2:])))
	assert.EqualValues(t, -100, int16(binary.LittleEndian.Uint16(data[wavHeaderSize+4:])))
}

func TestEncodeWAV_EmptyBuffer(t *testing.T) {
	// A zero-duration tone still encodes to a valid container.
	data, err := EncodeWAV(nil, DefaultSampleRate)
	require.NoError(t, err)
	require.Len(t, data, wavHeaderSize, "empty buffer encodes to a bare header")

	assert.EqualValues(t, 0, binary.LittleEndian.Uint32(data[dataSizeOffset:]))
	assert.EqualValues(t, DefaultSampleRate, binary.LittleEndian.Uint32(data[rateOffset:]))

	decoder := wav.NewDecoder(bytes.NewReader(data))
	assert.True(t, decoder.IsValidFile(), "standard decoder must accept the empty container")
}

func TestEncodeWAV_InvalidRate(t *testing.T) {
	_, err := EncodeWAV([]int16{1, 2, 3}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = EncodeWAV([]int16{1, 2, 3}, -44100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestWriteWAVFile_StorageFailure(t *testing.T) {
	err := WriteWAVFile(filepath.Join(t.TempDir(), "missing", "out.wav"), []int16{1}, DefaultSampleRate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestReadWAVFile_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, _, err := ReadWAVFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}
