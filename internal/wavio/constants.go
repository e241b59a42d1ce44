package wavio

// RIFF/WAVE layout constants for the mono 16-bit PCM containers this
// package produces.
const (
	// headerSize is the total header size in bytes.
	headerSize = 44

	// riffChunkBase is the RIFF chunk size excluding data
	// (file size - 8 = riffChunkBase + dataSize).
	riffChunkBase = 36

	// fmtChunkSize is the fmt subchunk size for plain PCM.
	fmtChunkSize = 16

	// formatPCM is the audio format tag for uncompressed PCM.
	formatPCM = 1

	// fileSizeOffset is the byte offset of the RIFF chunk size field.
	fileSizeOffset = 4

	// dataSizeOffset is the byte offset of the data chunk size field.
	dataSizeOffset = 40
)

// Fixed sample format. The package writes and reads only this layout.
const (
	numChannels    = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
)

// writerBufferSize is the bufio buffer used by Writer (64KB).
const writerBufferSize = 64 * 1024

// uint32Size is the size of a uint32 in bytes.
const uint32Size = 4
