package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumerateLengthFloor(t *testing.T) {
	b := mustBoard(t, 2, 2, "CATS")
	dict := newMapDictionary("CAT", "CATS")

	got := Enumerate(b, dict, NewSeenWords())
	want := []Discovery{
		{Word: "CATS", Path: Path{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Enumerate mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateSkipsSeenWords(t *testing.T) {
	b := mustBoard(t, 2, 2, "CATS")
	dict := newMapDictionary("CAT", "CATS")
	seen := NewSeenWords("CATS")

	if got := Enumerate(b, dict, seen); len(got) != 0 {
		t.Errorf("expected no discoveries, got %v", got)
	}
	if seen.Len() != 1 {
		t.Errorf("seen should be unchanged, got %v", seen.Words())
	}
}

func TestEnumerateReportsEachWordOnce(t *testing.T) {
	// TOOT can be traced from either T
	b := mustBoard(t, 2, 2, "TOTO")
	dict := newMapDictionary("TOOT")
	seen := NewSeenWords()

	got := Enumerate(b, dict, seen)
	want := []Discovery{
		{Word: "TOOT", Path: Path{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Enumerate mismatch (-want +got):\n%s", diff)
	}
	if !seen.Contains("TOOT") {
		t.Error("discovered word should be added to seen")
	}

	if again := Enumerate(b, dict, seen); len(again) != 0 {
		t.Errorf("second enumeration should find nothing new, got %v", again)
	}
}

func TestEnumerateOrder(t *testing.T) {
	b := mustBoard(t, 2, 3, "ABCDEF")
	dict := newMapDictionary("FEDA", "ABED", "CBAD")

	var words []string
	EnumerateFunc(b, dict, nil, func(d Discovery) {
		words = append(words, d.Word)
	})

	// Start cells are scanned row-major: A, C, then F
	want := []string{"ABED", "CBAD", "FEDA"}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Errorf("discovery order mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumeratePrunesOnPrefix(t *testing.T) {
	b := mustBoard(t, 4, 4, "XXXXXXXXXXXXXXXX")
	dict := newMapDictionary("ABCD")

	if got := Enumerate(b, dict, nil); len(got) != 0 {
		t.Fatalf("expected nothing, got %v", got)
	}
	// One prefix lookup per start cell, nothing deeper
	if dict.lookups != 16 {
		t.Errorf("expected 16 lookups, got %d", dict.lookups)
	}
}

// strictPrefixDictionary answers ContainsPrefix only for proper prefixes, so
// a word is never also its own prefix
type strictPrefixDictionary struct{ *mapDictionary }

func (d strictPrefixDictionary) ContainsPrefix(prefix string) bool {
	return d.mapDictionary.ContainsPrefix(prefix) && !d.mapDictionary.ContainsWord(prefix)
}

func TestEnumeratePrunesBeforeReporting(t *testing.T) {
	b := mustBoard(t, 2, 2, "CATS")

	got := Enumerate(b, strictPrefixDictionary{newMapDictionary("CATS")}, NewSeenWords())
	if len(got) != 0 {
		t.Errorf("Expected no words once the path stops being a prefix, got %v", got)
	}

	seen := NewSeenWords()
	Enumerate(b, strictPrefixDictionary{newMapDictionary("CATS")}, seen)
	if seen.Len() != 0 {
		t.Errorf("Expected seen words untouched, got %v", seen.Words())
	}
}

func TestEnumerateNilInputs(t *testing.T) {
	b := mustBoard(t, 2, 2, "CATS")
	if got := Enumerate(nil, newMapDictionary("CATS"), nil); got != nil {
		t.Errorf("nil board: got %v", got)
	}
	if got := Enumerate(b, nil, nil); got != nil {
		t.Errorf("nil dictionary: got %v", got)
	}
}

func TestEnumerateMatchesBruteForce(t *testing.T) {
	b := mustBoard(t, 3, 3, "TEARSOLID")
	spellings := allSpellings(b)

	// Mix of traceable words, short words and words the board cannot spell
	candidates := []string{
		"TEAR", "RATE", "TEARS", "STARE", "SEAT", "LOSE", "SOLE", "IDOL",
		"IDOLS", "DOLE", "SLID", "LIDS", "ROSE", "SORE", "ORES", "TOES",
		"EAR", "SO", "READ", "DEAR", "TREAD", "LOAD", "TEARSOLID",
	}
	dict := newMapDictionary(candidates...)

	var want []string
	for _, w := range candidates {
		if len(w) >= MinWordLength && len(spellings[w]) > 0 {
			want = append(want, w)
		}
	}
	sort.Strings(want)

	var got []string
	for _, d := range Enumerate(b, dict, NewSeenWords()) {
		if !b.IsValidPath(d.Path) || b.Spell(d.Path) != d.Word {
			t.Errorf("%s: invalid path %s", d.Word, d.Path)
		}
		got = append(got, d.Word)
	}
	sort.Strings(got)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Enumerate disagrees with brute force (-want +got):\n%s", diff)
	}
}

func TestEnumerateAfterHumanTurn(t *testing.T) {
	b := mustBoard(t, 3, 3, "TEARSOLID")
	dict := newMapDictionary("SLID", "TEAS", "RISE", "DOSE")
	seen := NewSeenWords()

	if _, verdict := CheckWord(b, dict, seen, "slid"); verdict != VerdictAccepted {
		t.Fatalf("expected SLID accepted, got %s", verdict)
	}
	seen.Add("SLID")

	found := Enumerate(b, dict, seen)
	if len(found) != 3 {
		t.Errorf("expected 3 computer words, got %v", found)
	}
	for _, d := range found {
		if d.Word == "SLID" {
			t.Fatal("computer turn re-reported a word the human found")
		}
	}
	if seen.Len() != 4 {
		t.Errorf("expected computer discoveries to be recorded, got %v", seen.Words())
	}
}
