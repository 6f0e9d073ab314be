package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/processor"
	"github.com/palemoky/tonetrainer/internal/testutil"
)

func probeEntries() []database.Entry {
	nihao := testutil.NiHao()

	rare := testutil.NiHao()
	rare.Simplified, rare.Traditional = "生僻", "生僻"

	done := testutil.NiHao()
	done.Simplified, done.Traditional = "谢谢", "謝謝"
	done.Available = database.AvailabilityYes

	return []database.Entry{nihao, rare, done}
}

func TestProbe(t *testing.T) {
	srv := forvoServer(t, map[string]string{
		"你好": `{"items": [{"pathmp3": "a.mp3", "rate": 0, "username": "alice"}]}`,
		"生僻": `{"items": [{"pathmp3": "b.mp3", "rate": 2, "username": "spammer"}]}`,
	})
	f := newFixture(t, srv.URL, probeEntries()...)

	out := &bytes.Buffer{}
	result, err := f.app("", out).Probe(context.Background(), 0, 1)
	require.NoError(t, err)

	assert.Equal(t, processor.Result{Checked: 2, Available: 1, Unavailable: 1}, result)
	assert.Equal(t, database.AvailabilityYes, f.entry(t, "你好").Available)
	assert.Equal(t, database.AvailabilityNo, f.entry(t, "生僻").Available)
	assert.Equal(t, database.AvailabilityYes, f.entry(t, "谢谢").Available)
	assert.Contains(t, out.String(), "checked 2 words")
	assertClosed(t, f.opened)
}

func TestProbeLimit(t *testing.T) {
	srv := forvoServer(t, nil)
	f := newFixture(t, srv.URL, probeEntries()...)

	result, err := f.app("", &bytes.Buffer{}).Probe(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
}

func TestProbeCommunicationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	f := newFixture(t, srv.URL, probeEntries()...)

	_, err := f.app("", &bytes.Buffer{}).Probe(context.Background(), 0, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCommunication, apperrors.KindOf(err))
	assertClosed(t, f.opened)
}

func TestStats(t *testing.T) {
	entries := probeEntries()
	entries[2].NumberTested = 4
	f := newFixture(t, "http://127.0.0.1:1", entries...)

	out := &bytes.Buffer{}
	require.NoError(t, f.app("", out).Stats(context.Background(), 10))

	s := out.String()
	assert.Contains(t, s, "rounds played: 4")
	assert.Contains(t, s, "謝謝")
	assert.Contains(t, s, "total")
}

func TestFindMismatches(t *testing.T) {
	ok := testutil.NiHao()
	wrong := database.Entry{Simplified: "中国", Pinyin1: "zhong1", Pinyin2: "guo3", Tone1: 1, Tone2: 3}

	mismatches := FindMismatches([]database.Entry{ok, wrong})
	require.Len(t, mismatches, 1)
	assert.Equal(t, "中国", mismatches[0].Entry.Simplified)
	assert.Equal(t, []string{"zhong1", "guo2"}, mismatches[0].Dictionary)
}

func TestVerify(t *testing.T) {
	wrong := database.Entry{Simplified: "中国", Pinyin1: "zhong1", Pinyin2: "guo3", Tone1: 1, Tone2: 3}
	f := newFixture(t, "http://127.0.0.1:1", testutil.NiHao(), wrong)

	out := &bytes.Buffer{}
	mismatches, err := f.app("", out).Verify(context.Background())
	require.NoError(t, err)
	assert.Len(t, mismatches, 1)
	assert.Contains(t, out.String(), "1 of 2 words differ")

	// read-only
	assert.Equal(t, 3, f.entry(t, "中国").Tone2)
}
