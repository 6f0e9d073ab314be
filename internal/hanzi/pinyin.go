package hanzi

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// NeutralTone is the tone number used for unstressed syllables.
const NeutralTone = 5

var tone3Args = pinyin.NewArgs()

func init() {
	// Tone numbers after the syllable, e.g. "hao3"
	tone3Args.Style = pinyin.Tone3
	tone3Args.Heteronym = false
}

// Syllables returns the numbered pinyin of every Chinese character in text.
// Syllables without a tone number get NeutralTone appended.
func Syllables(text string) []string {
	if text == "" {
		return nil
	}

	result := pinyin.Pinyin(text, tone3Args)
	syllables := make([]string, 0, len(result))
	for _, item := range result {
		if len(item) == 0 {
			continue
		}
		s := item[0]
		if !endsWithDigit(s) {
			s += "5"
		}
		syllables = append(syllables, s)
	}
	return syllables
}

// Tones returns the dictionary tone (1-5) of every Chinese character in text.
// These are citation tones: no sandhi is applied.
func Tones(text string) []int {
	syllables := Syllables(text)
	tones := make([]int, 0, len(syllables))
	for _, s := range syllables {
		tones = append(tones, ToneOf(s))
	}
	return tones
}

// ToneOf extracts the tone number from a numbered syllable such as "ni3".
// A syllable without a trailing digit is neutral.
func ToneOf(syllable string) int {
	syllable = strings.TrimSpace(syllable)
	if !endsWithDigit(syllable) {
		return NeutralTone
	}
	d := int(syllable[len(syllable)-1] - '0')
	if d < 1 || d > 5 {
		return NeutralTone
	}
	return d
}

func endsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsDigit(rune(s[len(s)-1]))
}
