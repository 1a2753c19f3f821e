package engine

// tracer holds the mutable state of a single path search. The path and the
// visited marks are pushed and undone together as the search backtracks.
type tracer struct {
	board   *Board
	word    string
	cols    int
	visited []bool
	path    Path
}

// FindPath reports whether word can be traced on b through distinct adjacent
// cells, returning the first path found. Start cells and neighbours are tried
// in row-major order and the search stops at the first complete path.
//
// word must be non-empty and uppercase. An empty word yields (nil, false).
func FindPath(b *Board, word string) (Path, bool) {
	if b == nil || word == "" {
		return nil, false
	}
	rows, cols := b.Dimensions()
	if len(word) > rows*cols {
		return nil, false
	}

	t := &tracer{
		board:   b,
		word:    word,
		cols:    cols,
		visited: make([]bool, rows*cols),
		path:    make(Path, 0, len(word)),
	}
	if !t.extend(Start(), 0) {
		return nil, false
	}

	out := make(Path, len(t.path))
	copy(out, t.path)
	return out, true
}

// extend tries to match word[i:] starting from a cell adjacent to prev
func (t *tracer) extend(prev Prev, i int) bool {
	if i == len(t.word) {
		return true
	}

	for _, c := range t.candidates(prev) {
		if t.visited[t.index(c)] || t.board.LetterAt(c) != t.word[i] {
			continue
		}
		t.push(c)
		if t.extend(From(c), i+1) {
			return true
		}
		t.pop()
	}
	return false
}

// candidates lists the cells that may follow prev
func (t *tracer) candidates(prev Prev) []Cell {
	if c, ok := prev.Cell(); ok {
		return t.board.Neighbors(c)
	}
	return t.board.Cells()
}

func (t *tracer) push(c Cell) {
	t.visited[t.index(c)] = true
	t.path = append(t.path, c)
}

func (t *tracer) pop() {
	last := t.path[len(t.path)-1]
	t.visited[t.index(last)] = false
	t.path = t.path[:len(t.path)-1]
}

func (t *tracer) index(c Cell) int {
	return c.Row*t.cols + c.Col
}
