package quiz

import (
	"fmt"
	"strings"
)

// Result is the outcome of scoring one guess.
type Result struct {
	Correct bool
	Guess   Tones
	// Stored is the pair as recorded in the word store.
	Stored Tones
	// Expected is the pair the guess was compared with.
	Expected Tones
}

// Sandhi reports whether the third-tone rule changed the expected pair.
func (r Result) Sandhi() bool {
	return r.Expected != r.Stored
}

// Score compares a guess with the stored tones of a word. Two third tones
// in a row are spoken as second + third, so a stored (3,3) expects (2,3).
func Score(guess, stored Tones) Result {
	expected := stored
	if stored.First == 3 && stored.Second == 3 {
		expected.First = 2
	}

	return Result{
		Correct:  guess == expected,
		Guess:    guess,
		Stored:   stored,
		Expected: expected,
	}
}

// Message renders the verdict and names the queried word. Wrong answers on
// a sandhi pair show both forms, e.g. "2 3 (3 3)".
func (r Result) Message(word string) string {
	var b strings.Builder
	if r.Correct {
		b.WriteString("your guess was correct\n")
	} else {
		b.WriteString("your guess was not correct; the correct tones are ")
		b.WriteString(r.Expected.String())
		if r.Sandhi() {
			fmt.Fprintf(&b, " (%s)", r.Stored)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "the queried word was %s\n", word)
	return b.String()
}
