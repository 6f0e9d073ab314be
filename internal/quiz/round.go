package quiz

import (
	"github.com/palemoky/tonetrainer/internal/database"
	"github.com/palemoky/tonetrainer/internal/forvo"
)

// Round is the state of one quiz item: the word, its usable pronunciations
// and which one is currently selected.
type Round struct {
	Entry      database.Entry
	Candidates []forvo.Candidate
	index      int
}

// NewRound starts at the first candidate. candidates must not be empty.
func NewRound(entry database.Entry, candidates []forvo.Candidate) *Round {
	return &Round{Entry: entry, Candidates: candidates}
}

// Current returns the selected candidate.
func (r *Round) Current() forvo.Candidate {
	return r.Candidates[r.index]
}

// Index returns the position of the selected candidate.
func (r *Round) Index() int {
	return r.index
}

// Advance selects the next candidate, wrapping to the first after the last.
func (r *Round) Advance() forvo.Candidate {
	r.index = (r.index + 1) % len(r.Candidates)
	return r.Current()
}

// Tones returns the stored tones of the word.
func (r *Round) Tones() Tones {
	return Tones{First: r.Entry.Tone1, Second: r.Entry.Tone2}
}
