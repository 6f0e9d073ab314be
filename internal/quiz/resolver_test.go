package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/forvo"
	"github.com/palemoky/tonetrainer/internal/testutil"
)

func TestResolverNextMarksAvailable(t *testing.T) {
	ctx := context.Background()
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedEntries(t, db, testutil.NiHao())

	lookup := newFakeLookup(map[string][]forvo.Candidate{
		"你好": {
			{URL: "https://audio/spam.mp3", Rating: 3, Contributor: "spammer"},
			{URL: "https://audio/good.mp3", Rating: 1, Contributor: "alice"},
		},
	})
	r := NewResolver(repo, lookup, forvo.NewExclusionList("spammer"))

	round, err := r.Next(ctx)
	require.NoError(t, err)

	require.Len(t, round.Candidates, 1)
	assert.Equal(t, "https://audio/good.mp3", round.Current().URL)
	assert.Equal(t, database.AvailabilityYes, round.Entry.Available)
	assert.Equal(t, database.AvailabilityYes, testutil.GetEntry(t, db, "你好").Available)
}

func TestResolverSkipsWordsWithoutCandidates(t *testing.T) {
	ctx := context.Background()
	db, repo := testutil.SetupTestDB(t)

	a := testutil.NiHao()
	a.Simplified, a.Traditional = "生僻", "生僻"
	b := testutil.NiHao()
	testutil.SeedEntries(t, db, a, b)

	lookup := newFakeLookup(map[string][]forvo.Candidate{
		"生僻": {{URL: "https://audio/bad.mp3", Rating: -1, Contributor: "alice"}},
		"你好": {{URL: "https://audio/good.mp3", Rating: 0, Contributor: "alice"}},
	})
	r := NewResolver(repo, lookup, forvo.NewExclusionList())

	for i := 0; i < 10; i++ {
		round, err := r.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "你好", round.Entry.Simplified)
	}

	assert.Equal(t, database.AvailabilityNo, testutil.GetEntry(t, db, "生僻").Available)
	assert.LessOrEqual(t, lookup.lookups["生僻"], 1, "an unavailable word is never looked up again")
}

func TestResolverExhausted(t *testing.T) {
	ctx := context.Background()
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedEntries(t, db, testutil.NiHao())

	r := NewResolver(repo, newFakeLookup(nil), nil)

	_, err := r.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindExhausted, apperrors.KindOf(err))
	assert.Equal(t, database.AvailabilityNo, testutil.GetEntry(t, db, "你好").Available)
}

func TestResolverCommunicationErrorLeavesStore(t *testing.T) {
	ctx := context.Background()
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedEntries(t, db, testutil.NiHao())

	lookup := newFakeLookup(nil)
	lookup.fail = true
	r := NewResolver(repo, lookup, nil)

	_, err := r.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCommunication, apperrors.KindOf(err))
	assert.Equal(t, 1, apperrors.ExitCode(err))
	assert.Equal(t, database.AvailabilityUnknown, testutil.GetEntry(t, db, "你好").Available)
}

func TestResolveKeepsYes(t *testing.T) {
	ctx := context.Background()
	db, repo := testutil.SetupTestDB(t)
	e := testutil.NiHao()
	e.Available = database.AvailabilityYes
	testutil.SeedEntries(t, db, e)

	// The service no longer has usable audio, but "yes" is final.
	r := NewResolver(repo, newFakeLookup(nil), nil)
	_, err := r.Resolve(ctx, &e)
	assert.ErrorIs(t, err, apperrors.ErrNoCandidates)

	assert.Equal(t, database.AvailabilityYes, testutil.GetEntry(t, db, "你好").Available)
}
