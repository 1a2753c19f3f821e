package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckWord(t *testing.T) {
	b := mustBoard(t, 2, 2, "STAR")
	dict := newMapDictionary("STAR", "RATS", "ARTS", "TSAR", "STARS", "SASS", "TARS")
	seen := NewSeenWords("TSAR")

	tests := []struct {
		word     string
		want     Verdict
		wantPath Path
	}{
		{"", VerdictTooShort, nil},
		{"ART", VerdictTooShort, nil},
		{"tsar", VerdictAlreadyFound, nil},
		{"STRA", VerdictNotAWord, nil},
		{"SASS", VerdictNotOnBoard, nil},
		{"STARS", VerdictNotOnBoard, nil},
		{"star", VerdictAccepted, Path{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"  Rats ", VerdictAccepted, Path{{1, 1}, {1, 0}, {0, 1}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			path, verdict := CheckWord(b, dict, seen, tt.word)
			if verdict != tt.want {
				t.Fatalf("CheckWord(%q) = %s, want %s", tt.word, verdict, tt.want)
			}
			if diff := cmp.Diff(tt.wantPath, path); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if seen.Len() != 1 {
		t.Errorf("CheckWord must not modify seen, got %v", seen.Words())
	}
}

func TestCheckWordOrder(t *testing.T) {
	b := mustBoard(t, 2, 2, "STAR")

	// Already found wins over not-a-word and not-on-board
	seen := NewSeenWords("ZZZZ")
	if _, v := CheckWord(b, newMapDictionary(), seen, "zzzz"); v != VerdictAlreadyFound {
		t.Errorf("expected already_found, got %s", v)
	}

	// Not-a-word wins over not-on-board
	if _, v := CheckWord(b, newMapDictionary(), NewSeenWords(), "QUIZ"); v != VerdictNotAWord {
		t.Errorf("expected not_a_word, got %s", v)
	}

	// A nil seen set behaves as empty
	if _, v := CheckWord(b, newMapDictionary("STAR"), nil, "STAR"); v != VerdictAccepted {
		t.Errorf("expected accepted with nil seen, got %s", v)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"CAT", 0},
		{"CATS", 1},
		{"TEARS", 2},
		{"STARED", 3},
		{"DOLPHINS", 5},
	}
	for _, tt := range tests {
		if got := Score(tt.word); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestSeenWords(t *testing.T) {
	s := NewSeenWords("cats", "DOGS")

	if !s.Contains("CATS") || !s.Contains("dogs") {
		t.Fatal("seen words must be case-insensitive")
	}
	if s.Add("Cats") {
		t.Error("Add of an existing word should report false")
	}
	if !s.Add("bird") {
		t.Error("Add of a new word should report true")
	}
	if diff := cmp.Diff([]string{"CATS", "DOGS", "BIRD"}, s.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestVerdictDescribe(t *testing.T) {
	verdicts := []Verdict{
		VerdictAccepted, VerdictTooShort, VerdictAlreadyFound,
		VerdictNotAWord, VerdictNotOnBoard, VerdictTurnOver,
	}
	for _, v := range verdicts {
		if v.Describe() == "" || v.Describe() == string(v) {
			t.Errorf("verdict %s has no description", v)
		}
	}
	if Verdict("other").Describe() != "other" {
		t.Error("unknown verdicts describe themselves")
	}
}
