package game

// TurnState pairs a board with the side to move. It is a value: Play and
// Pass return new states, so multiple games or speculative lines can share an
// ancestor state safely.
type TurnState struct {
	Board  Board
	ToMove Cell
}

// NewTurnState builds the starting state for a game of the given board size.
// Black moves first.
func NewTurnState(size int) (TurnState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return TurnState{}, err
	}
	return TurnState{Board: board, ToMove: Black}, nil
}

// Play applies mv for the side to move and hands the turn to the opponent.
// The captured discs are returned so a caller can render the flips.
func (t TurnState) Play(mv Move) (TurnState, CaptureSet, bool, error) {
	next, captured, ok, err := t.Board.Apply(mv, t.ToMove)
	if err != nil || !ok {
		return t, nil, false, err
	}
	return TurnState{Board: next, ToMove: t.ToMove.Opponent()}, captured, true, nil
}

// Pass hands the turn to the opponent without a move. The orchestrator calls
// this when the side to move has no legal move but the opponent does.
func (t TurnState) Pass() TurnState {
	return TurnState{Board: t.Board, ToMove: t.ToMove.Opponent()}
}

// Terminal reports whether neither side can move.
func (t TurnState) Terminal() bool {
	return t.Board.Terminal()
}

// Winner returns the side with the higher disc count on a finished board, or
// Empty for a draw. It is meaningful only once Terminal() holds.
func (t TurnState) Winner() Cell {
	black, white := t.Board.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
