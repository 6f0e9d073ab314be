// Package player starts audio playback through an external media player.
package player

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/logger"
)

// Player plays an audio reference (URL or local path).
type Player interface {
	Play(ctx context.Context, source string) error
}

// CommandPlayer launches a media player process per playback, e.g.
// `cvlc --play-and-exit --quiet <url>` or `mpv --no-video <url>`.
// Play returns as soon as the process started; it does not wait for the
// audio to finish.
type CommandPlayer struct {
	command string
	args    []string
	delay   time.Duration

	// start is swapped in tests
	start func(cmd *exec.Cmd) error
}

// NewCommandPlayer creates a player for the given executable and leading
// arguments. The source is appended as the last argument.
// A positive delay is slept after starting playback.
func NewCommandPlayer(command string, args []string, delay time.Duration) *CommandPlayer {
	return &CommandPlayer{
		command: command,
		args:    append([]string(nil), args...),
		delay:   delay,
		start:   startAndReap,
	}
}

// Play starts playback of source.
func (p *CommandPlayer) Play(ctx context.Context, source string) error {
	args := append(append([]string(nil), p.args...), source)

	// Not bound to ctx: playback may outlive the prompt that started it.
	cmd := exec.Command(p.command, args...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}

	logger.Debug("Playback started", zap.String("player", p.command), zap.String("source", source))

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// startAndReap starts the process and waits for it in the background so
// finished players don't linger as zombies.
func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warn("Player exited with error", zap.Error(err))
		}
	}()
	return nil
}
