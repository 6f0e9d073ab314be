package quiz

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/forvo"
	"github.com/palemoky/tonetrainer/internal/logger"
)

// Lookup fetches the raw pronunciation list of a word.
type Lookup interface {
	Pronunciations(ctx context.Context, word string) ([]forvo.Candidate, error)
}

// Resolver selects words and resolves their usable pronunciations,
// recording availability in the store.
type Resolver struct {
	store    database.RepositoryInterface
	lookup   Lookup
	excluded *forvo.ExclusionList
}

// NewResolver creates a resolver.
func NewResolver(store database.RepositoryInterface, lookup Lookup, excluded *forvo.ExclusionList) *Resolver {
	return &Resolver{store: store, lookup: lookup, excluded: excluded}
}

// Resolve looks up entry and returns its usable candidates.
// With candidates the word is marked available (once); without, it is
// marked unavailable and ErrNoCandidates is returned. Lookup failures are
// returned unchanged and leave the store untouched.
func (r *Resolver) Resolve(ctx context.Context, entry *database.Entry) ([]forvo.Candidate, error) {
	items, err := r.lookup.Pronunciations(ctx, entry.Simplified)
	if err != nil {
		return nil, err
	}

	kept := forvo.Filter(items, r.excluded)
	logger.Debug("Pronunciations filtered",
		zap.String("word", entry.Simplified),
		zap.Int("returned", len(items)),
		zap.Int("kept", len(kept)),
	)

	if len(kept) == 0 {
		if err := r.store.MarkAvailability(ctx, entry.Simplified, database.AvailabilityNo); err != nil {
			return nil, apperrors.Store("failed to record missing pronunciation", err)
		}
		if entry.Available != database.AvailabilityYes {
			entry.Available = database.AvailabilityNo
		}
		return nil, apperrors.ErrNoCandidates
	}

	if entry.Available != database.AvailabilityYes {
		if err := r.store.MarkAvailability(ctx, entry.Simplified, database.AvailabilityYes); err != nil {
			return nil, apperrors.Store("failed to record available pronunciation", err)
		}
		entry.Available = database.AvailabilityYes
	}

	return kept, nil
}

// Next picks random words until one has a usable pronunciation.
// Words without one are marked unavailable and never picked again.
func (r *Resolver) Next(ctx context.Context) (*Round, error) {
	for {
		entry, err := r.store.RandomAvailable(ctx)
		if errors.Is(err, database.ErrNoWords) {
			return nil, apperrors.Exhausted("no word with a usable pronunciation is left", err)
		}
		if err != nil {
			return nil, apperrors.Store("failed to select a word", err)
		}

		candidates, err := r.Resolve(ctx, entry)
		if errors.Is(err, apperrors.ErrNoCandidates) {
			logger.Debug("Skipping word without usable pronunciation", zap.String("word", entry.Simplified))
			continue
		}
		if err != nil {
			return nil, err
		}

		return NewRound(*entry, candidates), nil
	}
}
