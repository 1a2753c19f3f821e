package engine

import "strings"

// NormalizeWord trims surrounding whitespace and uppercases word
func NormalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// CheckWord decides whether word may be credited to the human player. The
// checks run in a fixed order: length, already seen, dictionary membership,
// then whether the board can spell it. The path is returned only when the
// verdict is VerdictAccepted. seen is not modified.
func CheckWord(b *Board, dict Dictionary, seen *SeenWords, word string) (Path, Verdict) {
	w := NormalizeWord(word)

	if len(w) < MinWordLength {
		return nil, VerdictTooShort
	}
	if seen != nil && seen.Contains(w) {
		return nil, VerdictAlreadyFound
	}
	if !dict.ContainsWord(w) {
		return nil, VerdictNotAWord
	}
	path, ok := FindPath(b, w)
	if !ok {
		return nil, VerdictNotOnBoard
	}
	return path, VerdictAccepted
}

// Score returns the points a word is worth: one point for four letters and
// one more for each additional letter.
func Score(word string) int {
	if len(word) < MinWordLength {
		return 0
	}
	return len(word) - (MinWordLength - 1)
}

// Describe returns a short human readable explanation of a verdict
func (v Verdict) Describe() string {
	switch v {
	case VerdictAccepted:
		return "word accepted"
	case VerdictTooShort:
		return "words must be at least 4 letters long"
	case VerdictAlreadyFound:
		return "word has already been found"
	case VerdictNotAWord:
		return "word is not in the dictionary"
	case VerdictNotOnBoard:
		return "word cannot be traced on the board"
	case VerdictTurnOver:
		return "the round is over"
	default:
		return string(v)
	}
}
