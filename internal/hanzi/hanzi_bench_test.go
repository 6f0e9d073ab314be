package hanzi

import (
	"testing"
)

// BenchmarkToTraditional benchmarks the ToTraditional function
func BenchmarkToTraditional(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"word", "你好"},
		{"phrase", "学习汉语的声调"},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = ToTraditional(tc.input)
			}
		})
	}
}

// BenchmarkTones benchmarks dictionary tone lookup of a two-character word
func BenchmarkTones(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Tones("中国")
	}
}
