package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		guess   Tones
		stored  Tones
		correct bool
		sandhi  bool
	}{
		{"sandhi pair guessed as spoken", Tones{2, 3}, Tones{3, 3}, true, true},
		{"sandhi pair guessed as written", Tones{3, 3}, Tones{3, 3}, false, true},
		{"plain match", Tones{1, 4}, Tones{1, 4}, true, false},
		{"plain mismatch", Tones{1, 2}, Tones{1, 4}, false, false},
		{"neutral second tone", Tones{4, 5}, Tones{4, 5}, true, false},
		{"third then other tone is not sandhi", Tones{3, 4}, Tones{3, 4}, true, false},
		{"second then third stored as is", Tones{2, 3}, Tones{2, 3}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(tt.guess, tt.stored)
			assert.Equal(t, tt.correct, r.Correct)
			assert.Equal(t, tt.sandhi, r.Sandhi())
			assert.Equal(t, tt.stored, r.Stored)
		})
	}
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "correct",
			result: Score(Tones{2, 3}, Tones{3, 3}),
			want:   "your guess was correct\nthe queried word was 你好\n",
		},
		{
			name:   "wrong sandhi pair shows both forms",
			result: Score(Tones{3, 3}, Tones{3, 3}),
			want:   "your guess was not correct; the correct tones are 2 3 (3 3)\nthe queried word was 你好\n",
		},
		{
			name:   "wrong plain pair",
			result: Score(Tones{1, 1}, Tones{4, 1}),
			want:   "your guess was not correct; the correct tones are 4 1\nthe queried word was 你好\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Message("你好"))
		})
	}
}
