package engine

import (
	"fmt"
	"sort"
)

// NeighborView is a neighbouring tile as seen from a cell
type NeighborView struct {
	Cell   Cell   `json:"cell"`
	Letter string `json:"letter"`
}

// CellView describes one tile and the tiles adjacent to it
type CellView struct {
	Cell      Cell           `json:"cell"`
	Letter    string         `json:"letter"`
	Neighbors []NeighborView `json:"neighbors"`
}

// DescribeCell returns the letter at c and its neighbours in row-major order
func DescribeCell(b *Board, c Cell) (*CellView, error) {
	if !b.Contains(c) {
		rows, cols := b.Dimensions()
		return nil, fmt.Errorf("%w: cell %s outside %dx%d board", ErrInvalidDimensions, c, rows, cols)
	}

	view := &CellView{Cell: c, Letter: string(b.LetterAt(c))}
	for _, n := range b.Neighbors(c) {
		view.Neighbors = append(view.Neighbors, NeighborView{Cell: n, Letter: string(b.LetterAt(n))})
	}
	return view, nil
}

// TotalScore sums the scores of words
func TotalScore(words []FoundWord) int {
	total := 0
	for _, w := range words {
		total += w.Score
	}
	return total
}

// LongestWord returns the longest word, preferring the earliest on ties
func LongestWord(words []FoundWord) (FoundWord, bool) {
	var best FoundWord
	found := false
	for _, w := range words {
		if !found || len(w.Word) > len(best.Word) {
			best = w
			found = true
		}
	}
	return best, found
}

// SortByScore returns a copy of words ordered by descending score, then alphabetically
func SortByScore(words []FoundWord) []FoundWord {
	out := make([]FoundWord, len(words))
	copy(out, words)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// CountByLength groups word counts by word length
func CountByLength(words []FoundWord) map[int]int {
	counts := make(map[int]int)
	for _, w := range words {
		counts[len(w.Word)]++
	}
	return counts
}
