// Package hanzi wraps the Chinese text tooling used by the trainer:
// character form conversion and dictionary pinyin readings.
package hanzi

import (
	"fmt"

	"github.com/liuzl/gocc"
)

var s2t *gocc.OpenCC // Simplified to Traditional

func init() {
	var err error

	s2t, err = gocc.New("s2t")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize s2t converter: %v", err))
	}
}

// ToTraditional converts simplified Chinese to traditional Chinese
func ToTraditional(text string) (string, error) {
	return s2t.Convert(text)
}

// TraditionalOr returns traditional when it is set and otherwise derives it
// from simplified. Conversion failures fall back to the simplified text.
func TraditionalOr(traditional, simplified string) string {
	if traditional != "" {
		return traditional
	}
	converted, err := ToTraditional(simplified)
	if err != nil || converted == "" {
		return simplified
	}
	return converted
}
