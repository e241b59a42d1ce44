// Package wavio encodes and decodes minimal mono 16-bit PCM RIFF/WAVE
// containers. Encoding is hand-rolled for exact control over the byte
// stream; decoding goes through github.com/go-audio/wav.
package wavio

import (
	"bufio"
	"encoding/binary"
	"io"
)

// putHeader writes a 44-byte PCM WAV header for mono 16-bit audio into dst.
// dst must be at least headerSize bytes.
func putHeader(dst []byte, sampleRate int, dataSize uint32) {
	byteRate := sampleRate * numChannels * bytesPerSample
	blockAlign := numChannels * bytesPerSample

	// RIFF chunk
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], riffChunkBase+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt subchunk
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], numChannels)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(dst[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data subchunk
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// Encode returns a complete WAV byte stream holding samples at sampleRate.
// A nil or empty sample slice yields a valid 44-byte container with an
// empty data chunk.
func Encode(samples []int16, sampleRate int) []byte {
	dataSize := len(samples) * bytesPerSample
	out := make([]byte, headerSize+dataSize)
	putHeader(out, sampleRate, uint32(dataSize))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[headerSize+i*bytesPerSample:], uint16(s))
	}
	return out
}

// Writer streams mono 16-bit PCM samples into a WAV container without
// buffering the whole signal in memory. It writes a header with placeholder
// sizes up front and patches the RIFF and data chunk sizes on Close, so the
// destination must support seeking.
type Writer struct {
	ws       io.WriteSeeker
	bw       *bufio.Writer
	dataSize uint32
	byteBuf  []byte
}

// NewWriter writes the WAV header to ws and returns a writer accepting
// sample data. Callers must Close the writer for the container to be valid.
func NewWriter(ws io.WriteSeeker, sampleRate int) (*Writer, error) {
	w := &Writer{
		ws: ws,
		bw: bufio.NewWriterSize(ws, writerBufferSize),
	}

	header := make([]byte, headerSize)
	putHeader(header, sampleRate, 0)
	if _, err := w.bw.Write(header); err != nil {
		return nil, err
	}
	return w, nil
}

// WriteSamples appends samples to the data chunk.
func (w *Writer) WriteSamples(samples []int16) error {
	needed := len(samples) * bytesPerSample
	if len(w.byteBuf) < needed {
		w.byteBuf = make([]byte, needed)
	}

	buf := w.byteBuf[:needed]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample:], uint16(s))
	}

	written, err := w.bw.Write(buf)
	w.dataSize += uint32(written)
	return err
}

// Close flushes buffered data and patches the header size fields with the
// final data chunk length.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}

	sizeBytes := make([]byte, uint32Size)

	if _, err := w.ws.Seek(fileSizeOffset, io.SeekStart); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(sizeBytes, riffChunkBase+w.dataSize)
	if _, err := w.ws.Write(sizeBytes); err != nil {
		return err
	}

	if _, err := w.ws.Seek(dataSizeOffset, io.SeekStart); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(sizeBytes, w.dataSize)
	if _, err := w.ws.Write(sizeBytes); err != nil {
		return err
	}

	return nil
}
