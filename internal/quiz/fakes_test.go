package quiz

import (
	"context"
	"sync"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/forvo"
)

// fakeLookup serves canned pronunciation lists per word.
type fakeLookup struct {
	mu      sync.Mutex
	items   map[string][]forvo.Candidate
	fail    bool
	lookups map[string]int
}

func newFakeLookup(items map[string][]forvo.Candidate) *fakeLookup {
	return &fakeLookup{items: items, lookups: map[string]int{}}
}

func (f *fakeLookup) Pronunciations(_ context.Context, word string) ([]forvo.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lookups[word]++
	if f.fail {
		return nil, apperrors.Communication("the pronunciation service returned status 503", nil)
	}
	return f.items[word], nil
}

// fakePlayer records every source it was asked to play.
type fakePlayer struct {
	played []string
	err    error
}

func (p *fakePlayer) Play(_ context.Context, source string) error {
	p.played = append(p.played, source)
	return p.err
}

// scriptedStore selects the listed words first, then falls back to the
// repository's random pick.
type scriptedStore struct {
	*database.Repository
	first []string
}

func (s *scriptedStore) RandomAvailable(ctx context.Context) (*database.Entry, error) {
	if len(s.first) == 0 {
		return s.Repository.RandomAvailable(ctx)
	}
	word := s.first[0]
	s.first = s.first[1:]
	return s.GetBySimplified(ctx, word)
}
