package game

import "fmt"

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// CaptureSet lists the opponent discs a move flips, in ray-walk order. An
// empty capture set means the move is illegal: placement alone never is a
// legal move.
type CaptureSet []Move

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Captures returns the discs that playing mv for side would flip. The result
// is empty when the target cell is occupied or no ray flanks opponent discs.
func (b Board) Captures(mv Move, side Cell) (CaptureSet, error) {
	if !b.inBounds(mv.Row, mv.Col) {
		return nil, fmt.Errorf("%w: %s on size %d", ErrOutOfBounds, mv, b.size)
	}
	if b.At(mv.Row, mv.Col) != Empty {
		return nil, nil
	}
	opponent := side.Opponent()

	var captured CaptureSet
	for _, dir := range directions {
		row, col := mv.Row+dir[0], mv.Col+dir[1]
		var run []Move
		for b.inBounds(row, col) && b.At(row, col) == opponent {
			run = append(run, Move{Row: row, Col: col})
			row += dir[0]
			col += dir[1]
		}
		// The run only counts when the ray ends on one of our own discs.
		if len(run) > 0 && b.inBounds(row, col) && b.At(row, col) == side {
			captured = append(captured, run...)
		}
	}
	return captured, nil
}

// LegalMoves enumerates every legal move for side in row-major order. The
// order is fixed: search tie-breaks and greedy selection both rely on it.
func (b Board) LegalMoves(side Cell) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col) != Empty {
				continue
			}
			captured, _ := b.Captures(Move{Row: row, Col: col}, side)
			if len(captured) > 0 {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Apply plays mv for side on a copy of the board. ok is false, with the
// original board returned unchanged, when the target cell is occupied or the
// move captures nothing; that is an expected outcome the caller must check,
// not an error. Only out-of-bounds coordinates produce an error.
func (b Board) Apply(mv Move, side Cell) (next Board, captured CaptureSet, ok bool, err error) {
	captured, err = b.Captures(mv, side)
	if err != nil {
		return b, nil, false, err
	}
	if len(captured) == 0 {
		return b, nil, false, nil
	}
	next = b.Copy()
	next.set(mv.Row, mv.Col, side)
	for _, c := range captured {
		next.set(c.Row, c.Col, side)
	}
	return next, captured, true, nil
}

// Terminal reports whether the game is over: neither side has a legal move.
func (b Board) Terminal() bool {
	return len(b.LegalMoves(Black)) == 0 && len(b.LegalMoves(White)) == 0
}
