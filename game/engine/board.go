package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrLetterCount       = errors.New("letter count does not match board dimensions")
	ErrInvalidLetter     = errors.New("board letters must be A-Z")
)

// Cell is a 0-indexed (row, column) coordinate on a board
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as (row,col)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Path is an ordered sequence of distinct, pairwise adjacent cells
type Path []Cell

// Contains reports whether c appears in the path
func (p Path) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// String renders the path as a list of cells
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Adjacent reports whether a and b are king-move neighbours. A cell is never adjacent to itself.
func Adjacent(a, b Cell) bool {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	return max(dr, dc) == 1
}

// Prev is the cell a trace arrives from. The zero value is the start of a
// trace, which has no predecessor and therefore accepts any cell.
type Prev struct {
	cell Cell
	set  bool
}

// Start returns the predecessor of the first cell in a trace
func Start() Prev {
	return Prev{}
}

// From returns a predecessor anchored at c
func From(c Cell) Prev {
	return Prev{cell: c, set: true}
}

// Cell returns the predecessor cell and whether there is one
func (p Prev) Cell() (Cell, bool) {
	return p.cell, p.set
}

// Adjacent reports whether c may follow this predecessor
func (p Prev) Adjacent(c Cell) bool {
	if !p.set {
		return true
	}
	return Adjacent(p.cell, c)
}

// Board is an immutable grid of uppercase letters
type Board struct {
	rows    int
	cols    int
	letters []byte
}

// NewBoard builds a rows x cols board from row-major letters
func NewBoard(rows, cols int, letters string) (*Board, error) {
	if rows < MinBoardDimension || cols < MinBoardDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(letters) != rows*cols {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrLetterCount, rows*cols, len(letters))
	}

	b := &Board{rows: rows, cols: cols, letters: make([]byte, len(letters))}
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch < 'A' || ch > 'Z' {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidLetter, ch, i)
		}
		b.letters[i] = ch
	}
	return b, nil
}

// Dimensions returns the number of rows and columns
func (b *Board) Dimensions() (rows, cols int) {
	return b.rows, b.cols
}

// Contains reports whether c lies within the board
func (b *Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// LetterAt returns the letter on c. c must lie within the board.
func (b *Board) LetterAt(c Cell) byte {
	return b.letters[c.Row*b.cols+c.Col]
}

// Cells returns every cell in row-major order
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// Neighbors returns the cells adjacent to c in row-major order
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: r, Col: col}
			if n != c && b.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Letters returns the board as a row-major string
func (b *Board) Letters() string {
	return string(b.letters)
}

// Rows returns one string per board row
func (b *Board) Rows() []string {
	out := make([]string, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = string(b.letters[r*b.cols : (r+1)*b.cols])
	}
	return out
}

// Spell concatenates the letters along p
func (b *Board) Spell(p Path) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, c := range p {
		sb.WriteByte(b.LetterAt(c))
	}
	return sb.String()
}

// IsValidPath reports whether p is in bounds, cell-distinct and adjacency-chained
func (b *Board) IsValidPath(p Path) bool {
	prev := Start()
	for i, c := range p {
		if !b.Contains(c) || !prev.Adjacent(c) || p[:i].Contains(c) {
			return false
		}
		prev = From(c)
	}
	return true
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
