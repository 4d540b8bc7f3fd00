package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesFromStart(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	moves := b.LegalMoves(Black)
	want := []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
	require.Equal(t, want, moves, "Black's opening moves in row-major order")

	// Each opening move flips exactly the one White disc between the new
	// disc and the existing Black disc.
	wantCaptures := map[Move]Move{
		{2, 4}: {3, 4},
		{3, 5}: {3, 4},
		{4, 2}: {4, 3},
		{5, 3}: {4, 3},
	}
	for mv, flip := range wantCaptures {
		captured, err := b.Captures(mv, Black)
		require.NoError(t, err)
		require.Equal(t, CaptureSet{flip}, captured, "move %s should flip exactly %s", mv, flip)
	}

	require.Len(t, b.LegalMoves(White), 4, "the start position is symmetric")
}

func TestCapturesOutOfBounds(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	for _, mv := range []Move{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {12, 12}} {
		_, err := b.Captures(mv, Black)
		require.ErrorIs(t, err, ErrOutOfBounds, "move %s is outside the board", mv)

		_, _, ok, err := b.Apply(mv, Black)
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.False(t, ok)
	}
}

func TestApply(t *testing.T) {
	t.Run("rejects occupied cells", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)

		next, captured, ok, err := b.Apply(Move{3, 3}, White)
		require.NoError(t, err, "an occupied cell is an expected outcome, not an error")
		require.False(t, ok)
		require.Empty(t, captured)
		require.Equal(t, b, next, "a failed apply must leave the board unchanged")
	})

	t.Run("rejects moves that capture nothing", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)

		next, _, ok, err := b.Apply(Move{0, 0}, Black)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, b, next)
	})

	t.Run("flips the flanked disc and places the mover", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)

		next, captured, ok, err := b.Apply(Move{2, 4}, Black)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, CaptureSet{{3, 4}}, captured)
		require.Equal(t, Black, next.At(2, 4), "the placed disc")
		require.Equal(t, Black, next.At(3, 4), "the flipped disc")

		black, white := next.Score()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
		require.Equal(t, 59, next.Empties())

		// The parent snapshot is untouched.
		require.Equal(t, White, b.At(3, 4))
		require.Equal(t, Empty, b.At(2, 4))
	})

	t.Run("captures along multiple rays at once", func(t *testing.T) {
		b := boardFrom(t, []string{
			"B...",
			"W...",
			".WWB",
			"....",
		})
		next, captured, ok, err := b.Apply(Move{2, 0}, Black)
		require.NoError(t, err)
		require.True(t, ok)
		require.ElementsMatch(t, CaptureSet{{1, 0}, {2, 1}, {2, 2}}, captured,
			"every flanked run flips, across rays")
		require.Equal(t, Black, next.At(1, 0))
		require.Equal(t, Black, next.At(2, 1))
		require.Equal(t, Black, next.At(2, 2))
	})
}

func TestApplySucceedsOnEveryLegalMove(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	for _, side := range []Cell{Black, White} {
		for _, mv := range b.LegalMoves(side) {
			captured, err := b.Captures(mv, side)
			require.NoError(t, err)
			require.NotEmpty(t, captured, "legal moves always capture")

			_, _, ok, err := b.Apply(mv, side)
			require.NoError(t, err)
			require.True(t, ok, "applying legal move %s for %s", mv, side)
		}
	}
}

func TestTerminal(t *testing.T) {
	t.Run("start position is live", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		require.False(t, b.Terminal())
	})

	t.Run("board with a single color is over", func(t *testing.T) {
		b := boardFrom(t, []string{
			"BBBB",
			"BBBB",
			"BBBB",
			"BBBB",
		})
		require.Empty(t, b.LegalMoves(Black))
		require.Empty(t, b.LegalMoves(White))
		require.True(t, b.Terminal())
	})

	t.Run("one blocked side does not end the game", func(t *testing.T) {
		// Black cannot flank the corner disc, but White can flank Black's.
		b := boardFrom(t, []string{
			"WB..",
			"....",
			"....",
			"....",
		})
		require.Empty(t, b.LegalMoves(Black), "Black has no flanking move")
		require.Equal(t, []Move{{0, 2}}, b.LegalMoves(White))
		require.False(t, b.Terminal(), "a forced pass is not game over")
	})
}

func TestTurnState(t *testing.T) {
	state, err := NewTurnState(8)
	require.NoError(t, err)
	require.Equal(t, Black, state.ToMove, "Black moves first")

	next, captured, ok, err := state.Play(Move{2, 4})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, captured, 1)
	require.Equal(t, White, next.ToMove, "the turn passes to the opponent")
	require.Equal(t, Black, state.ToMove, "the parent state is unchanged")

	passed := next.Pass()
	require.Equal(t, Black, passed.ToMove)
	require.Equal(t, next.Board, passed.Board, "passing never changes the board")
}

func TestTurnStateWinner(t *testing.T) {
	black := TurnState{Board: boardFrom(t, []string{
		"BBBB",
		"BBBB",
		"BBBB",
		"BBBW",
	}), ToMove: Black}
	require.True(t, black.Terminal())
	require.Equal(t, Black, black.Winner())

	draw := TurnState{Board: boardFrom(t, []string{
		"BBBB",
		"BBBB",
		"WWWW",
		"WWWW",
	}), ToMove: Black}
	require.True(t, draw.Terminal())
	require.Equal(t, Empty, draw.Winner(), "equal counts is a draw")
}
