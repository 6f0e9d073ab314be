package forvo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/palemoky/tonetrainer/internal/errors"
)

func TestFilter(t *testing.T) {
	excluded := NewExclusionList("spammer", "robot")

	tests := []struct {
		name  string
		items []Candidate
		want  []string
	}{
		{
			name:  "no items",
			items: nil,
			want:  []string{},
		},
		{
			name: "drops excluded contributors",
			items: []Candidate{
				{URL: "a", Rating: 3, Contributor: "spammer"},
				{URL: "b", Rating: 1, Contributor: "alice"},
			},
			want: []string{"b"},
		},
		{
			name: "drops negative ratings and keeps zero",
			items: []Candidate{
				{URL: "a", Rating: -1, Contributor: "alice"},
				{URL: "b", Rating: 0, Contributor: "bob"},
			},
			want: []string{"b"},
		},
		{
			name: "everything filtered",
			items: []Candidate{
				{URL: "a", Rating: 5, Contributor: "robot"},
				{URL: "b", Rating: -2, Contributor: "alice"},
			},
			want: []string{},
		},
		{
			name: "preserves order",
			items: []Candidate{
				{URL: "c", Rating: 2, Contributor: "carol"},
				{URL: "a", Rating: 4, Contributor: "alice"},
				{URL: "b", Rating: 1, Contributor: "bob"},
			},
			want: []string{"c", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.items, excluded)

			urls := make([]string, 0, len(got))
			for _, c := range got {
				assert.GreaterOrEqual(t, c.Rating, 0)
				assert.False(t, excluded.Contains(c.Contributor))
				urls = append(urls, c.URL)
			}
			assert.Equal(t, tt.want, urls)
		})
	}
}

func TestFilterNilExclusionList(t *testing.T) {
	got := Filter([]Candidate{{URL: "a", Rating: 0, Contributor: "x"}}, nil)
	assert.Len(t, got, 1)
}

func TestLoadExclusionList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pron_exclusion_list.txt")
	require.NoError(t, os.WriteFile(path, []byte("spammer\n\n  robot  \r\n"), 0o644))

	list, err := LoadExclusionList(path)
	require.NoError(t, err)

	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Contains("spammer"))
	assert.True(t, list.Contains("robot"))
	assert.False(t, list.Contains("alice"))
	assert.False(t, list.Contains(""))
}

func TestLoadExclusionListMissing(t *testing.T) {
	_, err := LoadExclusionList(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
}
