// Package keywords implements case-insensitive substring matching against a
// configurable word list. It backs the stretch-type and unhealthy-food
// classifiers so the lists stay testable and extensible.
package keywords

import "strings"

// Set is an immutable list of lowercase keywords.
type Set struct {
	words []string
}

// NewSet builds a Set from the given words. Matching is case-insensitive, so
// the words are stored lowercased.
func NewSet(words ...string) *Set {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			lowered = append(lowered, w)
		}
	}
	return &Set{words: lowered}
}

// MatchesAny reports whether text contains any keyword as a substring,
// ignoring case.
func (s *Set) MatchesAny(text string) bool {
	lowered := strings.ToLower(text)
	for _, w := range s.words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

// Words returns a copy of the keyword list.
func (s *Set) Words() []string {
	return append([]string(nil), s.words...)
}
