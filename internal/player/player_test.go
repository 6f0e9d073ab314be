package player

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPlayerArgs(t *testing.T) {
	p := NewCommandPlayer("cvlc", []string{"--play-and-exit", "--quiet"}, 0)

	var got []string
	p.start = func(cmd *exec.Cmd) error {
		got = cmd.Args
		return nil
	}

	require.NoError(t, p.Play(context.Background(), "https://audio/1.mp3"))
	assert.Equal(t, []string{"cvlc", "--play-and-exit", "--quiet", "https://audio/1.mp3"}, got)

	// base args must not accumulate sources
	require.NoError(t, p.Play(context.Background(), "https://audio/2.mp3"))
	assert.Equal(t, []string{"cvlc", "--play-and-exit", "--quiet", "https://audio/2.mp3"}, got)
}

func TestCommandPlayerStartError(t *testing.T) {
	p := NewCommandPlayer("missing-player", nil, 0)
	p.start = func(cmd *exec.Cmd) error { return errors.New("not found") }

	err := p.Play(context.Background(), "x.mp3")
	assert.ErrorContains(t, err, "missing-player")
}

func TestCommandPlayerDelayCancelled(t *testing.T) {
	p := NewCommandPlayer("cvlc", nil, time.Hour)
	p.start = func(cmd *exec.Cmd) error { return nil }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Play(ctx, "x.mp3")
	assert.ErrorIs(t, err, context.Canceled)
}
