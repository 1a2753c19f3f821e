package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// BoardSize selects one of the supported square boards and its dice
type BoardSize int

const (
	Standard BoardSize = 4
	Big      BoardSize = 5
)

var ErrBoardTooShort = errors.New("board letters too short")

// StandardCubes are the sixteen dice of a 4x4 board
var StandardCubes = []string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS", "AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW", "EIOSST", "ELRTTY", "HIMNQU", "HLNNRZ",
}

// BigBoggleCubes are the twenty-five dice of a 5x5 board
var BigBoggleCubes = []string{
	"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM", "AEEGMU", "AEGMNN", "AFIRSY",
	"BJKQXZ", "CCNSTW", "CEIILT", "CEILPT", "CEIPST", "DDLNOR", "DDHNOT", "DHHLOR",
	"DHLNOR", "EIIITT", "EMOTTT", "ENSSSU", "FIPRSY", "GORRVW", "HIPRRY", "NOOTUW", "OOOTTU",
}

// Valid reports whether s is a supported board size
func (s BoardSize) Valid() bool {
	return s == Standard || s == Big
}

// Cells returns the number of tiles on a board of this size
func (s BoardSize) Cells() int {
	return int(s) * int(s)
}

// Cubes returns the dice used to roll a board of this size
func (s BoardSize) Cubes() []string {
	switch s {
	case Big:
		return BigBoggleCubes
	default:
		return StandardCubes
	}
}

// String returns the size as RxC
func (s BoardSize) String() string {
	return fmt.Sprintf("%dx%d", int(s), int(s))
}

// RandomBoard rolls every die once and then shuffles the dice across the board
func RandomBoard(size BoardSize, rng *rand.Rand) (*Board, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: unsupported board size %d", ErrInvalidDimensions, int(size))
	}

	cubes := size.Cubes()
	faces := make([]byte, len(cubes))
	for i, cube := range cubes {
		faces[i] = cube[rng.Intn(len(cube))]
	}
	rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})

	return NewBoard(int(size), int(size), string(faces))
}

// ParseBoard builds a board from user supplied letters. Input is uppercased
// and whitespace is ignored; only the first size.Cells() letters are used.
// Whitespace is dropped before counting, so "STAR PLEA HIMN OUDE" fills a 4x4
// board; a cut of the first N raw characters would keep the spaces instead.
func ParseBoard(size BoardSize, input string) (*Board, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: unsupported board size %d", ErrInvalidDimensions, int(size))
	}

	letters := strings.ToUpper(strings.Join(strings.Fields(input), ""))
	n := size.Cells()
	if len(letters) < n {
		return nil, fmt.Errorf("%w: need %d letters, got %d", ErrBoardTooShort, n, len(letters))
	}
	return NewBoard(int(size), int(size), letters[:n])
}
