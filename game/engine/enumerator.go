package engine

// walker performs the exhaustive search behind Enumerate
type walker struct {
	board   *Board
	dict    Dictionary
	seen    *SeenWords
	emit    func(Discovery)
	cols    int
	visited []bool
	path    Path
	letters []byte
}

// Enumerate returns every dictionary word of at least MinWordLength letters
// that can be traced on b and is not already in seen. Each reported word is
// added to seen as it is found, so a word is reported at most once.
// Discoveries are ordered by start cell (row-major) and then by depth-first
// traversal with row-major neighbours.
func Enumerate(b *Board, dict Dictionary, seen *SeenWords) []Discovery {
	var found []Discovery
	EnumerateFunc(b, dict, seen, func(d Discovery) {
		found = append(found, d)
	})
	return found
}

// EnumerateFunc is Enumerate with discoveries streamed to fn instead of collected.
// A nil seen is treated as an empty set.
func EnumerateFunc(b *Board, dict Dictionary, seen *SeenWords, fn func(Discovery)) {
	if b == nil || dict == nil || fn == nil {
		return
	}
	if seen == nil {
		seen = NewSeenWords()
	}

	rows, cols := b.Dimensions()
	w := &walker{
		board:   b,
		dict:    dict,
		seen:    seen,
		emit:    fn,
		cols:    cols,
		visited: make([]bool, rows*cols),
		path:    make(Path, 0, rows*cols),
		letters: make([]byte, 0, rows*cols),
	}
	for _, c := range b.Cells() {
		w.visit(c)
	}
}

// visit extends the current path with c. Paths whose letters are not a
// dictionary prefix are abandoned before anything is reported; otherwise a
// new word is reported and the walk continues into unvisited neighbours.
func (w *walker) visit(c Cell) {
	w.push(c)
	defer w.pop()

	soFar := string(w.letters)
	if !w.dict.ContainsPrefix(soFar) {
		return
	}

	if len(soFar) >= MinWordLength && w.dict.ContainsWord(soFar) && w.seen.Add(soFar) {
		path := make(Path, len(w.path))
		copy(path, w.path)
		w.emit(Discovery{Word: soFar, Path: path})
	}

	for _, n := range w.board.Neighbors(c) {
		if !w.visited[w.index(n)] {
			w.visit(n)
		}
	}
}

func (w *walker) push(c Cell) {
	w.visited[w.index(c)] = true
	w.path = append(w.path, c)
	w.letters = append(w.letters, w.board.LetterAt(c))
}

func (w *walker) pop() {
	last := w.path[len(w.path)-1]
	w.visited[w.index(last)] = false
	w.path = w.path[:len(w.path)-1]
	w.letters = w.letters[:len(w.letters)-1]
}

func (w *walker) index(c Cell) int {
	return c.Row*w.cols + c.Col
}
