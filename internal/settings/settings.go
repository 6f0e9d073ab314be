// Package settings persists the user's choice of character form.
//
// The file holds a single token on its first line: "simplified" or
// "traditional".
package settings

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
)

// Load reads the character form from the settings file.
func Load(path string) (database.Lang, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.Config("failed to read settings file", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	var first string
	if scanner.Scan() {
		first = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", apperrors.Config("failed to read settings file", err)
	}

	lang, err := database.ParseLang(first)
	if err != nil {
		return "", apperrors.Config(
			fmt.Sprintf("settings file %s doesn't contain 'simplified' or 'traditional' in the first line", path), err)
	}
	return lang, nil
}

// Save overwrites the settings file with the given character form.
func Save(path string, lang database.Lang) error {
	if !lang.IsValid() {
		return apperrors.Config(fmt.Sprintf("invalid character form %q", lang), nil)
	}
	if err := os.WriteFile(path, []byte(string(lang)), 0o644); err != nil {
		return apperrors.Config("failed to write settings file", err)
	}
	return nil
}
