package player

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopSink_AlwaysSucceeds(t *testing.T) {
	var sink Sink = NopSink{}
	assert.NoError(t, sink.Play(context.Background(), "anything.wav"))
}

func TestExecSink_MissingBinary(t *testing.T) {
	sink := &ExecSink{Program: "definitely-not-an-audio-player"}
	err := sink.Play(context.Background(), "tone.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tone.wav")
	assert.Contains(t, err.Error(), sink.Program)
}

func TestExecSink_RunsProgramWithArgsAndPath(t *testing.T) {
	// Stand in a shell no-op for the player binary; the sink only cares
	// that the program runs to completion with the path appended.
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available on PATH")
	}

	sink := &ExecSink{Program: "true", Args: []string{"-q"}}
	assert.NoError(t, sink.Play(context.Background(), "tone.wav"))
}

func TestExecSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &ExecSink{Program: "true"}
	err := sink.Play(ctx, "tone.wav")
	require.Error(t, err, "a canceled context must abort playback")
}

func TestDetect_KnowsArgsForEverySupportedPlayer(t *testing.T) {
	for _, name := range detectOrder {
		_, ok := playerArgs[name]
		assert.True(t, ok, "player %s has no argument template", name)
	}
}
