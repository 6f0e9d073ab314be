package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/tonetrainer/internal/database"
	"github.com/palemoky/tonetrainer/internal/forvo"
)

func TestRoundAdvanceWraps(t *testing.T) {
	for n := 1; n <= 4; n++ {
		candidates := make([]forvo.Candidate, n)
		for i := range candidates {
			candidates[i] = forvo.Candidate{URL: string(rune('a' + i))}
		}
		r := NewRound(database.Entry{Simplified: "你好"}, candidates)

		assert.Equal(t, 0, r.Index())
		for i := 0; i < n; i++ {
			r.Advance()
		}
		assert.Equal(t, 0, r.Index(), "advancing %d times over %d candidates returns to the first", n, n)
		assert.Equal(t, "a", r.Current().URL)
	}
}

func TestRoundAdvanceOrder(t *testing.T) {
	r := NewRound(database.Entry{}, []forvo.Candidate{{URL: "a"}, {URL: "b"}, {URL: "c"}})

	assert.Equal(t, "b", r.Advance().URL)
	assert.Equal(t, "c", r.Advance().URL)
	assert.Equal(t, "a", r.Advance().URL)
}
