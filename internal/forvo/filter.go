package forvo

import (
	"bufio"
	"os"
	"strings"

	apperrors "github.com/palemoky/tonetrainer/internal/errors"
)

// ExclusionList holds contributors whose recordings are never offered.
type ExclusionList struct {
	users map[string]struct{}
}

// NewExclusionList builds a list from contributor names.
func NewExclusionList(users ...string) *ExclusionList {
	l := &ExclusionList{users: make(map[string]struct{}, len(users))}
	for _, u := range users {
		u = strings.TrimSpace(u)
		if u != "" {
			l.users[u] = struct{}{}
		}
	}
	return l
}

// LoadExclusionList reads newline-delimited contributor names.
func LoadExclusionList(path string) (*ExclusionList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Config("failed to read exclusion list", err)
	}
	defer func() { _ = f.Close() }()

	var users []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		users = append(users, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Config("failed to read exclusion list", err)
	}
	return NewExclusionList(users...), nil
}

// Contains reports whether the contributor is excluded.
func (l *ExclusionList) Contains(user string) bool {
	if l == nil {
		return false
	}
	_, ok := l.users[user]
	return ok
}

// Len returns the number of excluded contributors.
func (l *ExclusionList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.users)
}

// Filter keeps candidates with a non-negative rating whose contributor is
// not excluded. Order is preserved.
func Filter(items []Candidate, excluded *ExclusionList) []Candidate {
	kept := make([]Candidate, 0, len(items))
	for _, item := range items {
		if item.Rating < 0 || excluded.Contains(item.Contributor) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
