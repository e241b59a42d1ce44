// Package player invokes an external command-line audio player to play
// generated WAV files. Playback is a caller-side concern: the Sink
// interface keeps everything above it testable without an audio device or
// player binary present.
package player

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoPlayer indicates no supported audio player was found on PATH.
var ErrNoPlayer = errors.New("no supported audio player found on PATH, install one of: afplay, paplay, aplay, sox (play), ffplay")

// Sink plays an audio file synchronously. Play returns once playback
// finishes or the context is canceled.
type Sink interface {
	Play(ctx context.Context, path string) error
}

// playerArgs maps supported player binaries to the arguments that precede
// the file path. Every entry plays a file synchronously and quietly.
var playerArgs = map[string][]string{
	"afplay": nil,    // macOS built-in
	"paplay": nil,    // PulseAudio
	"aplay":  {"-q"}, // ALSA
	"play":   {"-q"}, // sox
	"ffplay": {"-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// detectOrder is the preference order for Detect.
var detectOrder = []string{"afplay", "paplay", "aplay", "play", "ffplay"}

// ExecSink plays files by running an external player binary.
type ExecSink struct {
	// Program is the player executable, as a name resolved via PATH or an
	// absolute path.
	Program string

	// Args are passed to the player before the file path.
	Args []string
}

// Ensure ExecSink implements Sink.
var _ Sink = (*ExecSink)(nil)

// Detect returns an ExecSink for the first supported player found on PATH.
func Detect() (*ExecSink, error) {
	for _, name := range detectOrder {
		if _, err := exec.LookPath(name); err == nil {
			return &ExecSink{Program: name, Args: playerArgs[name]}, nil
		}
	}
	return nil, ErrNoPlayer
}

// Play runs the player on path and waits for it to exit. A missing binary,
// a non-zero exit status and context cancellation are all reported as
// errors.
func (s *ExecSink) Play(ctx context.Context, path string) error {
	args := make([]string, 0, len(s.Args)+1)
	args = append(args, s.Args...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, s.Program, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("playing %s with %s: %w", path, s.Program, err)
	}
	return nil
}

// NopSink is a Sink that plays nothing and always succeeds. It stands in
// for a real player in tests.
type NopSink struct{}

// Play implements Sink.
func (NopSink) Play(context.Context, string) error { return nil }
