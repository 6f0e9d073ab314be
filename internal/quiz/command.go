// Package quiz drives a tone drill: it picks a word, resolves its
// pronunciations, plays them and scores the typed tones.
package quiz

import (
	"fmt"
	"strings"
)

// Tones is a pair of syllable tones, each 1-5 (5 is neutral).
type Tones struct {
	First  int
	Second int
}

func (t Tones) String() string {
	return fmt.Sprintf("%d %d", t.First, t.Second)
}

// Valid reports whether both tones are in 1-5.
func (t Tones) Valid() bool {
	return validTone(t.First) && validTone(t.Second)
}

func validTone(t int) bool {
	return t >= 1 && t <= 5
}

// CommandKind tags a parsed input line.
type CommandKind int

const (
	CmdUnrecognized CommandKind = iota
	CmdReplay
	CmdNext
	CmdQuit
	CmdGuess
	CmdContinue
)

func (k CommandKind) String() string {
	switch k {
	case CmdReplay:
		return "replay"
	case CmdNext:
		return "next"
	case CmdQuit:
		return "quit"
	case CmdGuess:
		return "guess"
	case CmdContinue:
		return "continue"
	default:
		return "unrecognized"
	}
}

// Command is one line of user input. Guess is set only for CmdGuess.
type Command struct {
	Kind  CommandKind
	Guess Tones
}

// ParseCommand turns an input line into a Command.
// A guess is exactly two digits, each 1-5, e.g. "23".
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return Command{Kind: CmdContinue}
	case "r":
		return Command{Kind: CmdReplay}
	case "n":
		return Command{Kind: CmdNext}
	case "q":
		return Command{Kind: CmdQuit}
	}

	if len(line) == 2 {
		guess := Tones{First: int(line[0]) - '0', Second: int(line[1]) - '0'}
		if guess.Valid() {
			return Command{Kind: CmdGuess, Guess: guess}
		}
	}

	return Command{Kind: CmdUnrecognized}
}
