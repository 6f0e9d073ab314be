package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/logger"
	"github.com/palemoky/tonetrainer/internal/player"
)

// State is a step of the quiz loop.
type State int

const (
	StateSelectingWord State = iota
	StatePresenting
	StateAwaitingGuess
	StateScored
	StateAwaitingNext
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSelectingWord:
		return "selecting_word"
	case StatePresenting:
		return "presenting"
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateScored:
		return "scored"
	case StateAwaitingNext:
		return "awaiting_next"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// UsageHint is printed for input that is neither a command nor a guess.
const UsageHint = "please either enter 'q', 'r', 'n' or a tone combination, e.g. 14"

// RoundSource yields the next word to quiz.
type RoundSource interface {
	Next(ctx context.Context) (*Round, error)
}

// Recorder stores the outcome of a completed round.
type Recorder interface {
	IncrementTested(ctx context.Context, simplified string) error
}

// Session runs the quiz loop over a console.
type Session struct {
	source   RoundSource
	recorder Recorder
	player   player.Player
	lang     database.Lang
	console  *Console

	state  State
	round  *Round
	guess  Tones
	result *Result
	rounds int
}

// NewSession creates a session in StateSelectingWord.
func NewSession(source RoundSource, recorder Recorder, p player.Player, lang database.Lang, console *Console) *Session {
	return &Session{
		source:   source,
		recorder: recorder,
		player:   p,
		lang:     lang,
		console:  console,
		state:    StateSelectingWord,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Round returns the current round, nil before the first word is selected.
func (s *Session) Round() *Round {
	return s.round
}

// LastResult returns the result of the most recent guess.
func (s *Session) LastResult() *Result {
	return s.result
}

// CompletedRounds returns how many rounds were scored and recorded.
func (s *Session) CompletedRounds() int {
	return s.rounds
}

// Run steps the loop until the user quits or a fatal error occurs.
// Quitting, including closing the input or cancelling ctx, returns nil.
func (s *Session) Run(ctx context.Context) error {
	for s.state != StateTerminated {
		if ctx.Err() != nil {
			s.interrupt()
			break
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	logger.Info("Session finished", zap.Int("rounds", s.rounds))
	return nil
}

// Step performs one state transition.
func (s *Session) Step(ctx context.Context) error {
	switch s.state {
	case StateSelectingWord:
		return s.selectWord(ctx)
	case StatePresenting:
		return s.present(ctx)
	case StateAwaitingGuess:
		return s.awaitGuess(ctx)
	case StateScored:
		return s.score(ctx)
	case StateAwaitingNext:
		return s.awaitNext(ctx)
	case StateTerminated:
		return nil
	default:
		return fmt.Errorf("unknown session state %s", s.state)
	}
}

func (s *Session) selectWord(ctx context.Context) error {
	round, err := s.source.Next(ctx)
	if err != nil {
		return err
	}
	s.round = round
	s.result = nil
	s.state = StatePresenting

	logger.Debug("Word selected",
		zap.String("word", round.Entry.Simplified),
		zap.Int("candidates", len(round.Candidates)),
	)
	return nil
}

func (s *Session) present(ctx context.Context) error {
	s.console.Printf("%s [%d pron.]\n", s.round.Entry.Pinyin(), len(s.round.Candidates))
	s.play(ctx, s.round.Current().URL)
	s.state = StateAwaitingGuess
	return nil
}

func (s *Session) awaitGuess(ctx context.Context) error {
	cmd, err := s.readCommand(ctx)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case CmdGuess:
		s.guess = cmd.Guess
		s.state = StateScored
	case CmdQuit:
		s.state = StateTerminated
	case CmdReplay, CmdNext:
		s.replay(ctx, cmd.Kind)
	default:
		s.console.Println(UsageHint)
	}
	return nil
}

func (s *Session) score(ctx context.Context) error {
	result := Score(s.guess, s.round.Tones())
	s.result = &result
	s.console.Printf("%s", result.Message(s.word()))

	if err := s.recorder.IncrementTested(ctx, s.round.Entry.Simplified); err != nil {
		return apperrors.Store("failed to record the round", err)
	}
	s.round.Entry.NumberTested++
	s.rounds++

	logger.Debug("Round scored",
		zap.String("word", s.round.Entry.Simplified),
		zap.Bool("correct", result.Correct),
	)

	s.state = StateAwaitingNext
	return nil
}

func (s *Session) awaitNext(ctx context.Context) error {
	cmd, err := s.readCommand(ctx)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case CmdQuit:
		s.state = StateTerminated
	case CmdReplay, CmdNext:
		s.replay(ctx, cmd.Kind)
	default:
		s.state = StateSelectingWord
	}
	return nil
}

// interrupt ends the session without touching the round in progress.
func (s *Session) interrupt() {
	logger.Debug("Session interrupted", zap.Stringer("state", s.state))
	s.console.Println()
	s.state = StateTerminated
}

// readCommand reads one line. End of input and cancellation terminate the
// session.
func (s *Session) readCommand(ctx context.Context) (Command, error) {
	line, err := s.console.ReadLine(ctx)
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		return Command{Kind: CmdQuit}, nil
	}
	if err != nil {
		return Command{}, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseCommand(line), nil
}

func (s *Session) replay(ctx context.Context, kind CommandKind) {
	candidate := s.round.Current()
	if kind == CmdNext {
		candidate = s.round.Advance()
	}
	s.play(ctx, candidate.URL)
}

// play starts playback. Failures are reported but never end the session.
func (s *Session) play(ctx context.Context, source string) {
	if err := s.player.Play(ctx, source); err != nil {
		logger.Warn("Playback failed", zap.String("source", source), zap.Error(err))
		s.console.Println("audio playback failed:", err)
	}
}

// word is the queried word in the configured character form.
func (s *Session) word() string {
	return s.round.Entry.Form(s.lang)
}
