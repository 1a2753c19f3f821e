package engine

import (
	"strings"
	"testing"
)

// mapDictionary is a small in-memory Dictionary for tests
type mapDictionary struct {
	words    map[string]bool
	prefixes map[string]bool
	lookups  int
}

func newMapDictionary(words ...string) *mapDictionary {
	d := &mapDictionary{words: map[string]bool{}, prefixes: map[string]bool{}}
	for _, w := range words {
		w = strings.ToUpper(w)
		d.words[w] = true
		for i := 0; i <= len(w); i++ {
			d.prefixes[w[:i]] = true
		}
	}
	return d
}

func (d *mapDictionary) ContainsWord(word string) bool {
	d.lookups++
	return d.words[strings.ToUpper(word)]
}

func (d *mapDictionary) ContainsPrefix(prefix string) bool {
	d.lookups++
	return d.prefixes[strings.ToUpper(prefix)]
}

func mustBoard(t *testing.T, rows, cols int, letters string) *Board {
	t.Helper()
	b, err := NewBoard(rows, cols, letters)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d, %q): %v", rows, cols, letters, err)
	}
	return b
}

// allSpellings walks every simple path on b and records each spelled string
// together with every path spelling it.
func allSpellings(b *Board) map[string][]Path {
	out := make(map[string][]Path)
	var walk func(p Path)
	walk = func(p Path) {
		cp := make(Path, len(p))
		copy(cp, p)
		s := b.Spell(cp)
		out[s] = append(out[s], cp)

		last := p[len(p)-1]
		for _, c := range b.Cells() {
			if Adjacent(last, c) && !p.Contains(c) {
				walk(append(p, c))
			}
		}
	}
	for _, c := range b.Cells() {
		walk(Path{c})
	}
	return out
}

func testConfig() *GameConfig {
	config := DefaultGameConfig()
	config.Name = "test"
	config.Description = "fixed board for engine tests"
	config.Letters = "STARPLEAHIMNOUDE"
	return config
}
