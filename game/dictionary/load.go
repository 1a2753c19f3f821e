package dictionary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var ErrEmptyDictionary = errors.New("dictionary contains no words")

// embedded default list so the game runs without a configured word file
//
//go:embed default_words.txt
var embeddedWords string

var (
	defaultOnce sync.Once
	defaultTrie *Trie
	defaultErr  error
)

// Load reads one word per line from r. Blank lines and lines starting with
// '#' are skipped; other lines are trimmed and added when purely alphabetic.
func Load(r io.Reader) (*Trie, error) {
	t := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		t.Add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	if t.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return t, nil
}

// LoadFile loads a word list from path
func LoadFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return t, nil
}

// Default returns the embedded word list. It is parsed once and shared.
func Default() (*Trie, error) {
	defaultOnce.Do(func() {
		defaultTrie, defaultErr = Load(strings.NewReader(embeddedWords))
	})
	return defaultTrie, defaultErr
}

// Open loads path, or the embedded list when path is empty
func Open(path string) (*Trie, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
