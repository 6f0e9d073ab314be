package database

import "fmt"

// Lang selects which character form of a word is shown to the user.
type Lang string

const (
	// LangSimplified shows simplified characters
	LangSimplified Lang = "simplified"
	// LangTraditional shows traditional characters
	LangTraditional Lang = "traditional"
)

// IsValid checks if the character form is one of the known values
func (l Lang) IsValid() bool {
	return l == LangSimplified || l == LangTraditional
}

// ParseLang parses a persisted setting token.
// Unlike lookups with a fallback, an unknown token is an error because the
// settings file is user-edited.
func ParseLang(s string) (Lang, error) {
	switch Lang(s) {
	case LangSimplified, LangTraditional:
		return Lang(s), nil
	default:
		return "", fmt.Errorf("unknown character form %q (must be 'simplified' or 'traditional')", s)
	}
}
