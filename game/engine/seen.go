package engine

import "strings"

// SeenWords is the set of words already claimed in a round. It is shared by
// the human and computer turns so that no word is credited twice. Words are
// stored uppercase and never removed.
type SeenWords struct {
	set   map[string]struct{}
	order []string
}

// NewSeenWords creates a set holding words
func NewSeenWords(words ...string) *SeenWords {
	s := &SeenWords{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts word and reports whether it was not already present
func (s *SeenWords) Add(word string) bool {
	w := strings.ToUpper(word)
	if _, ok := s.set[w]; ok {
		return false
	}
	s.set[w] = struct{}{}
	s.order = append(s.order, w)
	return true
}

// Contains reports whether word has been seen
func (s *SeenWords) Contains(word string) bool {
	_, ok := s.set[strings.ToUpper(word)]
	return ok
}

// Len returns the number of words seen
func (s *SeenWords) Len() int {
	return len(s.order)
}

// Words returns the seen words in insertion order
func (s *SeenWords) Words() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
