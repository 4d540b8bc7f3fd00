package game

import "fmt"

// Cell holds the occupancy of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

var (
	ErrBoardSize   = fmt.Errorf("board size must be an even number >= 4")
	ErrOutOfBounds = fmt.Errorf("coordinates outside the board")
)

// Board is one immutable snapshot of the game: a square grid of cells stored
// row-major. Operations never mutate a Board in place - they return a copy
// with the change applied, so hypothetical positions built during search
// share nothing with their ancestors.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard builds the canonical starting position for the given side length:
// Black on one diagonal of the center 2x2 block, White on the other.
func NewBoard(size int) (Board, error) {
	if size < 4 || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBoardSize, size)
	}
	b := Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	mid := size / 2
	b.set(mid-1, mid-1, Black)
	b.set(mid, mid, Black)
	b.set(mid-1, mid, White)
	b.set(mid, mid-1, White)
	return b, nil
}

// Copy returns an independently owned duplicate of the board.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the occupancy of (row, col). Callers must pass in-bounds
// coordinates; exported entry points validate with ErrOutOfBounds first.
func (b Board) At(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.size+col] = c
}

// Score tallies the discs of each side over the whole board.
func (b Board) Score() (black, white int) {
	for _, c := range b.cells {
		switch c {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Empties counts unoccupied cells.
func (b Board) Empties() int {
	empties := 0
	for _, c := range b.cells {
		if c == Empty {
			empties++
		}
	}
	return empties
}

// ParseBoard builds a board from a row diagram, the inverse of String:
// 'B' black, 'W' white, '.' empty. One string per row.
func ParseBoard(rows []string) (Board, error) {
	size := len(rows)
	if size < 4 || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrBoardSize, size)
	}
	b := Board{size: size, cells: make([]Cell, size*size)}
	for row, line := range rows {
		if len(line) != size {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", row, len(line), size)
		}
		for col, ch := range line {
			switch ch {
			case 'B':
				b.set(row, col, Black)
			case 'W':
				b.set(row, col, White)
			case '.':
			default:
				return Board{}, fmt.Errorf("unknown cell %q at (%d,%d)", ch, row, col)
			}
		}
	}
	return b, nil
}

func (b Board) String() string {
	out := make([]byte, 0, b.size*(b.size+1))
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.At(row, col) {
			case Black:
				out = append(out, 'B')
			case White:
				out = append(out, 'W')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
